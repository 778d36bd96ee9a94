package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/leighmacdonald/srinfo/internal/config"
	"github.com/leighmacdonald/srinfo/internal/encoding"
	"github.com/leighmacdonald/srinfo/internal/mihomo"
	"github.com/leighmacdonald/srinfo/internal/render"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language/display"
)

var errUID = errors.New("invalid uid")

func newProfileCmd(opts *flags) *cobra.Command {
	var asJSON bool
	var width int

	profileCmd := &cobra.Command{
		Use:     "profile <uid>...",
		Short:   "Fetch and display player profiles",
		Example: "srinfo profile 800000001\nsrinfo profile --lang jp --json 800000001 800000002",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uids, errUIDs := parseUIDs(args)
			if errUIDs != nil {
				return errUIDs
			}

			conf, closer, errSetup := setup(cmd, opts)
			if errSetup != nil {
				return errSetup
			}
			defer closer()

			lang, errLang := conf.Lang()
			if errLang != nil {
				return errors.Join(errLang, errApp)
			}

			profiles, errFetch := fetchProfiles(cmd.Context(), newClient(conf), uids, lang, conf.Concurrency)
			if errFetch != nil {
				return errors.Join(errFetch, errApp)
			}

			return writeProfiles(cmd.OutOrStdout(), profiles, asJSON, width)
		},
	}

	profileCmd.Flags().BoolVar(&asJSON, "json", false, "Print the parsed profiles as JSON")
	profileCmd.Flags().IntVar(&width, "width", render.DefaultWidth, "Output width")

	return profileCmd
}

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "languages",
		Short:             "List the supported languages",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeLanguages(cmd.OutOrStdout())
		},
	}
}

// setup loads the config, applies flag overrides and installs the logger. The returned func
// releases the log file if one was opened.
func setup(cmd *cobra.Command, opts *flags) (config.Config, func(), error) {
	loader := config.NewLoader(opts.configFile)
	if opts.lang != "" {
		loader.Set("language", opts.lang)
	}

	if opts.logLevel != "" {
		loader.Set("log_level", opts.logLevel)
	}

	conf, errConfig := loader.Read()
	if errConfig != nil {
		return config.Config{}, nil, errors.Join(errConfig, errApp)
	}

	closer := func() {}

	if conf.LogFile != "" {
		logFile, errLogger := config.LoggerInitFile(conf.LogFile, conf.SlogLevel())
		if errLogger != nil {
			return config.Config{}, nil, errors.Join(errLogger, errApp)
		}

		closer = func() {
			if err := logFile.Close(); err != nil {
				slog.Error("Failed to close log file", slog.String("error", err.Error()))
			}
		}
	} else {
		config.LoggerInit(cmd.ErrOrStderr(), conf.SlogLevel())
	}

	slog.Debug("Loaded config", slog.String("path", loader.Path()), slog.String("language", conf.Language),
		slog.String("version", BuildVersion))

	return conf, closer, nil
}

func newClient(conf config.Config) *mihomo.Client {
	userAgent := conf.UserAgent
	if userAgent != "" {
		userAgent += "/" + BuildVersion
	}

	return mihomo.New(
		mihomo.WithHTTPClient(&http.Client{Timeout: conf.HTTPTimeout}),
		mihomo.WithBaseURL(conf.APIBaseURL),
		mihomo.WithUserAgent(userAgent),
	)
}

func parseUIDs(args []string) ([]uint32, error) {
	uids := make([]uint32, 0, len(args))
	for _, arg := range args {
		uid, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return nil, errors.Join(err, fmt.Errorf("%w: %s", errUID, arg))
		}

		uids = append(uids, uint32(uid))
	}

	return uids, nil
}

// fetchProfiles fetches every uid concurrently, at most limit at a time. Results keep the order
// of uids. The first failure cancels the remaining requests.
func fetchProfiles(ctx context.Context, client *mihomo.Client, uids []uint32, lang mihomo.Language, limit int) ([]*mihomo.Profile, error) {
	profiles := make([]*mihomo.Profile, len(uids))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(1, limit))

	for index, uid := range uids {
		group.Go(func() error {
			profile, err := client.FetchProfile(groupCtx, uid, lang)
			if err != nil {
				slog.Error("Failed to fetch profile", slog.Uint64("uid", uint64(uid)),
					slog.String("kind", mihomo.Classify(err).String()), slog.String("error", err.Error()))

				return err
			}

			profiles[index] = profile

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return profiles, nil
}

func writeProfiles(writer io.Writer, profiles []*mihomo.Profile, asJSON bool, width int) error {
	if asJSON {
		if len(profiles) == 1 {
			return encoding.WriteJSON(writer, profiles[0])
		}

		return encoding.WriteJSON(writer, profiles)
	}

	for index, profile := range profiles {
		if index > 0 {
			if _, err := io.WriteString(writer, "\n"); err != nil {
				return errors.Join(err, errApp)
			}
		}

		if err := render.Profile(writer, profile, width); err != nil {
			return err
		}
	}

	return nil
}

func writeLanguages(writer io.Writer) error {
	for _, lang := range mihomo.Languages() {
		tag := lang.Tag()
		if _, err := fmt.Fprintf(writer, "%-4s %-8s %-22s %s\n", lang.Code(), tag.String(),
			display.English.Tags().Name(tag), display.Self.Name(tag)); err != nil {
			return errors.Join(err, errApp)
		}
	}

	return nil
}
