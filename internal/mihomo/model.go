package mihomo

import "golang.org/x/exp/constraints"

// Profile is the parsed sr_info_parsed document for a single player.
//
// Every field without omitempty is required when decoding. Pointer fields are optional and are
// nil when the key is missing or null.
type Profile struct {
	Player     Player      `json:"player"`
	Characters []Character `json:"characters"`
}

type Player struct {
	UID         string    `json:"uid"`
	Name        string    `json:"nickname"`
	Level       uint8     `json:"level"`
	WorldLevel  uint8     `json:"world_level"`
	FriendCount uint8     `json:"friend_count"`
	Avatar      Avatar    `json:"avatar"`
	Signature   string    `json:"signature"`
	IsDisplay   bool      `json:"is_display"`
	SpaceInfo   SpaceInfo `json:"space_info"`
}

type Avatar struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// SpaceInfo holds the account wide collection counters.
type SpaceInfo struct {
	ForgottenHall    ForgottenHall `json:"memory_data"`
	UniverseLevel    uint8         `json:"universe_level"`
	AvatarCount      uint16        `json:"avatar_count"`
	LightConeCount   uint16        `json:"light_cone_count"`
	RelicCount       uint16        `json:"relic_count"`
	AchievementCount uint16        `json:"achievement_count"`
	BookCount        uint16        `json:"book_count"`
	MusicCount       uint16        `json:"music_count"`
}

// ForgottenHall summarises challenge progress. ChaosID is only set once the player has entered
// the Memory of Chaos mode.
type ForgottenHall struct {
	Level          uint8   `json:"level"`
	ChaosID        *string `json:"chaos_id,omitempty"`
	ChaosLevel     uint8   `json:"chaos_level"`
	ChaosStarCount uint8   `json:"chaos_star_count"`
}

type Character struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Rarity       uint8           `json:"rarity"`
	Level        uint8           `json:"level"`
	Ascension    uint8           `json:"promotion"`
	Eidolon      uint8           `json:"rank"`
	EidolonIcons []string        `json:"rank_icons"`
	Icon         string          `json:"icon"`
	Preview      string          `json:"preview"`
	Portrait     string          `json:"portrait"`
	Path         Path            `json:"path"`
	Element      Element         `json:"element"`
	Traces       []Trace         `json:"skills"`
	TraceTree    []TraceTreeNode `json:"skill_trees"`
	LightCone    *LightCone      `json:"light_cone,omitempty"`
	Relics       []Relic         `json:"relics"`
	RelicSets    []RelicSet      `json:"relic_sets"`
	Attributes   []Attribute     `json:"attributes"`
	Additions    []Attribute     `json:"additions"`
	Properties   []Property      `json:"properties"`
}

// MaxLevel is the level cap for the current ascension.
func (c Character) MaxLevel() int {
	return maxLevel(c.Ascension)
}

type Path struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type Element struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// Trace is a character skill. Element is set only for skills that deal typed damage.
type Trace struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Level      uint8    `json:"level"`
	MaxLevel   uint8    `json:"max_level"`
	Element    *Element `json:"element,omitempty"`
	Type       string   `json:"type"`
	TypeText   string   `json:"type_text"`
	Effect     string   `json:"effect"`
	EffectText string   `json:"effect_text"`
	SimpleDesc string   `json:"simple_desc"`
	Desc       string   `json:"desc"`
	Icon       string   `json:"icon"`
}

// TraceTreeNode is a node of the trace upgrade tree. Root nodes have no Parent.
type TraceTreeNode struct {
	ID       string  `json:"id"`
	Level    uint8   `json:"level"`
	MaxLevel uint8   `json:"max_level"`
	Icon     string  `json:"icon"`
	Anchor   string  `json:"anchor"`
	Parent   *string `json:"parent,omitempty"`
}

type LightCone struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Rarity          uint8       `json:"rarity"`
	Superimposition uint8       `json:"rank"`
	Level           uint8       `json:"level"`
	Ascension       uint8       `json:"promotion"`
	Icon            string      `json:"icon"`
	Preview         string      `json:"preview"`
	Portrait        string      `json:"portrait"`
	Path            Path        `json:"path"`
	Attributes      []Attribute `json:"attributes"`
	Properties      []Property  `json:"properties"`
}

// MaxLevel is the level cap for the current ascension.
func (lc LightCone) MaxLevel() int {
	return maxLevel(lc.Ascension)
}

type Relic struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	SetID      string     `json:"set_id"`
	SetName    string     `json:"set_name"`
	Rarity     uint8      `json:"rarity"`
	Level      uint8      `json:"level"`
	MainAffix  MainAffix  `json:"main_affix"`
	SubAffixes []SubAffix `json:"sub_affix"`
	Icon       string     `json:"icon"`
}

// RelicSet describes an active set bonus. Num is the number of equipped pieces of the set.
type RelicSet struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Icon       string     `json:"icon"`
	Num        uint8      `json:"num"`
	Desc       string     `json:"desc"`
	Properties []Property `json:"properties"`
}

type Attribute struct {
	Field   string  `json:"field"`
	Name    string  `json:"name"`
	Icon    string  `json:"icon"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
	Percent bool    `json:"percent"`
}

type Property struct {
	Type    string  `json:"type"`
	Field   string  `json:"field"`
	Name    string  `json:"name"`
	Icon    string  `json:"icon"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
	Percent bool    `json:"percent"`
}

// MainAffix is the primary stat of a relic. The property fields sit at the top level of the
// main_affix object.
type MainAffix struct {
	Property
}

// SubAffix is a secondary relic stat. Count is the number of rolls it received and Step the
// accumulated roll steps.
type SubAffix struct {
	Property
	Count uint8 `json:"count"`
	Step  uint8 `json:"step"`
}

func maxLevel[T constraints.Unsigned](ascension T) int {
	return 20 + 10*int(ascension)
}
