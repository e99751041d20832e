package game

import (
	"gorm.io/gorm"
)

// Phase is the room state machine: LOBBY -> PLAYING -> FINISHED, with reset
// returning to LOBBY.
type Phase string

const (
	PhaseLobby    Phase = "LOBBY"
	PhasePlaying  Phase = "PLAYING"
	PhaseFinished Phase = "FINISHED"
)

// Action is a bidding action submitted by a team on its turn.
type Action string

const (
	ActionPass Action = "PASS"
	ActionTake Action = "TAKE"
)

// MaxTeamMembers caps how many participants may share one team seat.
const MaxTeamMembers = 20

// LogEntry is one line of the room's audit log.
type LogEntry struct {
	Turn    int    `json:"turn"`
	Message string `json:"message"`
}

// Team is the unit of play. Several participants (members) can control one
// team; the seat is identified by ColorIndex, which is unique within a room
// and stable for the room's lifetime.
type Team struct {
	gorm.Model
	RoomID   uint   `json:"-"`
	TeamUUID string `json:"team_uuid" gorm:"index"`
	Name     string `json:"name"`
	// ColorIndex is the seat identity, in [0, maxTeams).
	ColorIndex int `json:"color_index"`
	Chips      int `json:"chips"`
	// HeldCards are the projects this team has taken, as negative values.
	HeldCards CardList `json:"held_cards" gorm:"type:text"`
	// Score is derived display state. It must always equal
	// chips - debt(heldCards) and is recomputed by the engine on every
	// chip or card change, never patched incrementally.
	Score       int        `json:"score"`
	MemberIDs   StringList `json:"member_ids" gorm:"type:text"`
	MemberNames StringList `json:"member_names" gorm:"type:text"`
}

func (Team) TableName() string { return "room_teams" }

// Room is the aggregate game state, the single source of truth for one live
// session. It is persisted as a whole after every accepted transition.
type Room struct {
	gorm.Model
	Name     string `json:"name" gorm:"size:32"`
	JoinCode string `json:"join_code" gorm:"unique"`
	HostID   string `json:"host_id"`

	// Validated room configuration, fixed at creation (never re-defaulted
	// at read sites).
	MaxTeams      int `json:"max_teams"`
	StartingChips int `json:"starting_chips"`

	Phase Phase `json:"phase"`
	// Teams in turn order. The order is fixed once the game starts.
	Teams []Team   `json:"teams"`
	Deck  CardList `json:"deck" gorm:"type:text"`
	// CurrentCard is the face-up card being bid on; nil in LOBBY and after
	// the game ends.
	CurrentCard *Card `json:"current_card"`
	// HiddenCard is set aside at deal time and revealed only at game end.
	// It belongs to nobody and never enters scoring.
	HiddenCard       *Card `json:"hidden_card"`
	Pot              int   `json:"pot"`
	CurrentTeamIndex int   `json:"current_team_index"`
	// TurnCount increments each time the face-up card changes (every TAKE).
	TurnCount           int      `json:"turn_count"`
	LastPassedTeamIndex *int     `json:"last_passed_team_index"`
	Logs                LogList  `json:"logs" gorm:"type:text"`
	AdviceUsage         UsageMap `json:"advice_usage" gorm:"type:text"`
	Winner              string   `json:"winner"`
	Message             string   `json:"message"`
}

func (Room) TableName() string { return "rooms" }

// Recap caches the LLM-generated post-game artifacts for a finished game so
// regeneration never runs twice for the same final state. The key is the
// canonical room key (see internal/keys).
type Recap struct {
	gorm.Model
	RoomKey   string `json:"room_key" gorm:"uniqueIndex"`
	RecapText string `json:"recap_text" gorm:"size:4096"`
	// PosterPNG stores the resized poster image bytes. Omitted from JSON;
	// served as a PNG asset.
	PosterPNG []byte `json:"-" gorm:"column:poster_png;type:blob"`
}

func (Recap) TableName() string { return "room_recaps" }

// TeamByUUID returns the team with the given id, or nil.
func (r *Room) TeamByUUID(uuid string) *Team {
	for i := range r.Teams {
		if r.Teams[i].TeamUUID == uuid {
			return &r.Teams[i]
		}
	}
	return nil
}

// TeamByColor returns the team seated at the given color index, or nil.
func (r *Room) TeamByColor(colorIndex int) *Team {
	for i := range r.Teams {
		if r.Teams[i].ColorIndex == colorIndex {
			return &r.Teams[i]
		}
	}
	return nil
}

// TeamOfMember returns the team a participant belongs to, or nil.
func (r *Room) TeamOfMember(memberID string) *Team {
	for i := range r.Teams {
		if r.Teams[i].MemberIDs.Contains(memberID) {
			return &r.Teams[i]
		}
	}
	return nil
}

// CurrentTeam returns the team whose turn it is, or nil outside PLAYING.
func (r *Room) CurrentTeam() *Team {
	if r.CurrentTeamIndex < 0 || r.CurrentTeamIndex >= len(r.Teams) {
		return nil
	}
	return &r.Teams[r.CurrentTeamIndex]
}

// AppendLog records an audit line tagged with the current turn.
func (r *Room) AppendLog(message string) {
	r.Logs = append(r.Logs, LogEntry{Turn: r.TurnCount, Message: message})
}

// Clone returns a deep copy of the room. The engine transitions clones so a
// failed precondition never leaves a half-mutated aggregate behind.
func (r *Room) Clone() *Room {
	out := *r
	out.Teams = make([]Team, len(r.Teams))
	for i := range r.Teams {
		t := r.Teams[i]
		t.HeldCards = append(CardList{}, t.HeldCards...)
		t.MemberIDs = append(StringList{}, t.MemberIDs...)
		t.MemberNames = append(StringList{}, t.MemberNames...)
		out.Teams[i] = t
	}
	out.Deck = append(CardList{}, r.Deck...)
	out.Logs = append(LogList{}, r.Logs...)
	out.AdviceUsage = make(UsageMap, len(r.AdviceUsage))
	for k, v := range r.AdviceUsage {
		out.AdviceUsage[k] = v
	}
	if r.CurrentCard != nil {
		c := *r.CurrentCard
		out.CurrentCard = &c
	}
	if r.HiddenCard != nil {
		c := *r.HiddenCard
		out.HiddenCard = &c
	}
	if r.LastPassedTeamIndex != nil {
		i := *r.LastPassedTeamIndex
		out.LastPassedTeamIndex = &i
	}
	return &out
}
