package recap

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/1970jjh/minusproject/internal/game"
	"github.com/1970jjh/minusproject/internal/keys"
)

type mockRepo struct {
	recaps map[string]*game.Recap
	saved  int
}

func (m *mockRepo) CreateRoom(r *game.Room) error                        { return nil }
func (m *mockRepo) GetRoomByID(id uint) (*game.Room, error)              { return nil, nil }
func (m *mockRepo) FindRoomByJoinCode(code string) (*game.Room, error)   { return nil, nil }
func (m *mockRepo) ListOpenRooms() ([]game.Room, error)                  { return nil, nil }
func (m *mockRepo) UpdateRoom(r *game.Room) error                        { return nil }
func (m *mockRepo) DeleteTeams(roomID uint) error                        { return nil }
func (m *mockRepo) DeleteRoom(id uint) error                             { return nil }
func (m *mockRepo) FindStaleRooms(cutoff time.Time) ([]game.Room, error) { return nil, nil }

func (m *mockRepo) GetRecapByKey(key string) (*game.Recap, error) {
	return m.recaps[key], nil
}

func (m *mockRepo) SaveRecap(rec *game.Recap) error {
	if m.recaps == nil {
		m.recaps = map[string]*game.Recap{}
	}
	m.recaps[rec.RoomKey] = rec
	m.saved++
	return nil
}

func finishedRoom() *game.Room {
	hidden := game.Card(-37)
	return &game.Room{
		JoinCode:   "ROOM1234",
		Phase:      game.PhaseFinished,
		TurnCount:  24,
		HiddenCard: &hidden,
		Winner:     "Team 2",
		Teams: []game.Team{
			{TeamUUID: "a", Name: "Team 1", ColorIndex: 0, Chips: 3, HeldCards: game.CardList{-30, -31, -32, -40}, Score: 3 - 70},
			{TeamUUID: "b", Name: "Team 2", ColorIndex: 1, Chips: 12, HeldCards: game.CardList{-26}, Score: 12 - 26},
		},
	}
}

func TestBuildStandings(t *testing.T) {
	out := BuildStandings(finishedRoom())
	for _, want := range []string{
		"Final standings after 24 rounds",
		"Team 2: score -14, 12 chips",
		"(-30,-31,-32)",
		"WINNER",
		"hidden project, never auctioned, was -37",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("standings missing %q:\n%s", want, out)
		}
	}
}

func TestGetOrCreateRejectsLiveGame(t *testing.T) {
	r := finishedRoom()
	r.Phase = game.PhasePlaying
	if _, err := GetOrCreate(context.Background(), &mockRepo{}, r); err != ErrGameNotFinished {
		t.Fatalf("expected ErrGameNotFinished, got %v", err)
	}
}

func TestGetOrCreateReturnsCached(t *testing.T) {
	r := finishedRoom()
	repo := &mockRepo{}
	seeded := &game.Recap{
		RoomKey:   keys.RecapKey(r.JoinCode, r.Teams),
		RecapText: "cached analysis",
	}
	if err := repo.SaveRecap(seeded); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	saves := repo.saved

	got, err := GetOrCreate(context.Background(), repo, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.RecapText != "cached analysis" {
		t.Fatalf("expected cached recap, got %q", got.RecapText)
	}
	if repo.saved != saves {
		t.Fatalf("cached recap must not be regenerated")
	}
}
