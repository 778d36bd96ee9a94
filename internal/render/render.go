// Package render formats parsed profiles for the terminal.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/srinfo/internal/mihomo"
	"github.com/muesli/reflow/wordwrap"
)

const (
	DefaultWidth = 100
	minWidth     = 40
	none         = "-"
)

var errRender = errors.New("failed to render profile")

var (
	Accent = lipgloss.Color("#f4722b")
	Gray   = lipgloss.Color("#3e3e3e")
	White  = lipgloss.Color("#cccccc")

	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(Accent)
	LabelStyle  = lipgloss.NewStyle().Foreground(White)
	MutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	HeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	CellStyle   = lipgloss.NewStyle().Padding(0, 1)
	BorderStyle = lipgloss.NewStyle().Foreground(Gray)
)

// Profile writes the player summary followed by one table per character.
func Profile(writer io.Writer, profile *mihomo.Profile, width int) error {
	if profile == nil {
		return errRender
	}

	width = max(width, minWidth)

	var builder strings.Builder
	builder.WriteString(playerSummary(profile.Player, width))

	for _, character := range profile.Characters {
		builder.WriteString("\n")
		builder.WriteString(characterSummary(character, width))
	}

	if _, err := io.WriteString(writer, builder.String()); err != nil {
		return errors.Join(err, errRender)
	}

	return nil
}

func playerSummary(player mihomo.Player, width int) string {
	info := player.SpaceInfo
	hall := info.ForgottenHall

	chaos := none
	if hall.ChaosID != nil {
		chaos = fmt.Sprintf("%s (stage %d, %d stars)", *hall.ChaosID, hall.ChaosLevel, hall.ChaosStarCount)
	}

	lines := []string{
		TitleStyle.Render(fmt.Sprintf("%s (%s)", player.Name, player.UID)),
		field("Level", fmt.Sprintf("%d  World %d  Friends %d", player.Level, player.WorldLevel, player.FriendCount)),
		field("Avatar", player.Avatar.Name),
		field("Collection", fmt.Sprintf("%s characters, %s light cones, %s relics, %s achievements, %s books, %s tracks",
			humanize.Comma(int64(info.AvatarCount)), humanize.Comma(int64(info.LightConeCount)),
			humanize.Comma(int64(info.RelicCount)), humanize.Comma(int64(info.AchievementCount)),
			humanize.Comma(int64(info.BookCount)), humanize.Comma(int64(info.MusicCount)))),
		field("Simulated Universe", strconv.Itoa(int(info.UniverseLevel))),
		field("Forgotten Hall", fmt.Sprintf("%d", hall.Level)),
		field("Memory of Chaos", chaos),
	}

	if player.Signature != "" {
		lines = append(lines, MutedStyle.Render(wordwrap.String(player.Signature, width)))
	}

	return strings.Join(lines, "\n") + "\n"
}

func field(label string, value string) string {
	return LabelStyle.Render(label+":") + " " + value
}

func characterSummary(character mihomo.Character, width int) string {
	element := lipgloss.NewStyle().Foreground(lipgloss.Color(character.Element.Color))
	title := TitleStyle.Render(fmt.Sprintf("%s %s", character.Name, strings.Repeat("*", int(character.Rarity)))) +
		" " + element.Render(character.Element.Name) + " " + MutedStyle.Render(character.Path.Name)

	rows := [][]string{
		{"Level", fmt.Sprintf("%d/%d", character.Level, character.MaxLevel())},
		{"Eidolon", "E" + strconv.Itoa(int(character.Eidolon))},
		{"Light Cone", lightCone(character.LightCone)},
		{"Relic Sets", relicSets(character.RelicSets)},
		{"Main Stats", mainAffixes(character.Relics)},
	}

	for _, property := range character.Properties {
		rows = append(rows, []string{property.Name, property.Display})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(BorderStyle).
		Width(width).
		Headers("Stat", "Value").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle
			}

			return CellStyle
		})

	parts := []string{title, tbl.Render()}
	if traces := traceSummary(character.Traces, width); traces != "" {
		parts = append(parts, traces)
	}

	return strings.Join(parts, "\n") + "\n"
}

func lightCone(lc *mihomo.LightCone) string {
	if lc == nil {
		return none
	}

	return fmt.Sprintf("%s S%d %d/%d", lc.Name, lc.Superimposition, lc.Level, lc.MaxLevel())
}

func relicSets(sets []mihomo.RelicSet) string {
	if len(sets) == 0 {
		return none
	}

	names := make([]string, 0, len(sets))
	for _, set := range sets {
		names = append(names, fmt.Sprintf("%s (%d)", set.Name, set.Num))
	}

	return strings.Join(names, ", ")
}

func mainAffixes(relics []mihomo.Relic) string {
	if len(relics) == 0 {
		return none
	}

	stats := make([]string, 0, len(relics))
	for _, relic := range relics {
		stats = append(stats, relic.MainAffix.Name+" "+relic.MainAffix.Display)
	}

	return strings.Join(stats, ", ")
}

func traceSummary(traces []mihomo.Trace, width int) string {
	lines := make([]string, 0, len(traces))
	for _, trace := range traces {
		line := fmt.Sprintf("%s %s (%d/%d): %s", LabelStyle.Render(trace.TypeText), trace.Name,
			trace.Level, trace.MaxLevel, trace.SimpleDesc)
		lines = append(lines, wordwrap.String(line, width))
	}

	return strings.Join(lines, "\n")
}
