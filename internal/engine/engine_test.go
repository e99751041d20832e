package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/1970jjh/minusproject/internal/game"
)

func lobbyRoom(teamCount, startingChips int) *game.Room {
	r := &game.Room{
		Name:          "Test Room",
		JoinCode:      "TESTROOM",
		MaxTeams:      6,
		StartingChips: startingChips,
		Phase:         game.PhaseLobby,
	}
	for i := 0; i < teamCount; i++ {
		r.Teams = append(r.Teams, game.Team{
			TeamUUID:    fmt.Sprintf("team-%d", i),
			Name:        fmt.Sprintf("Team %d", i+1),
			ColorIndex:  i,
			MemberIDs:   game.StringList{fmt.Sprintf("member-%d", i)},
			MemberNames: game.StringList{fmt.Sprintf("Player %d", i+1)},
		})
	}
	return r
}

func playingRoom(t *testing.T, teamCount, startingChips int) *game.Room {
	t.Helper()
	s, err := Initialize(lobbyRoom(teamCount, startingChips))
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	return s
}

// heldCardCount sums the cards owned by all teams.
func heldCardCount(r *game.Room) int {
	n := 0
	for i := range r.Teams {
		n += len(r.Teams[i].HeldCards)
	}
	return n
}

// cardConservation verifies that deck + hidden + face-up + held cards always
// account for the full card range.
func cardConservation(r *game.Room) bool {
	n := len(r.Deck) + heldCardCount(r)
	if r.HiddenCard != nil {
		n++
	}
	if r.CurrentCard != nil {
		n++
	}
	return n == game.TotalCards
}

func TestInitialize(t *testing.T) {
	s := playingRoom(t, 3, 10)

	if s.Phase != game.PhasePlaying {
		t.Fatalf("expected PLAYING, got %s", s.Phase)
	}
	if s.HiddenCard == nil || s.CurrentCard == nil {
		t.Fatalf("expected hidden and face-up cards to be dealt")
	}
	if len(s.Deck) != game.TotalCards-2 {
		t.Fatalf("expected %d cards left in deck, got %d", game.TotalCards-2, len(s.Deck))
	}
	if s.TurnCount != 1 || s.CurrentTeamIndex != 0 || s.Pot != 0 {
		t.Fatalf("bad initial counters: turn=%d team=%d pot=%d", s.TurnCount, s.CurrentTeamIndex, s.Pot)
	}
	for i := range s.Teams {
		if s.Teams[i].Chips != 10 || s.Teams[i].Score != 10 || len(s.Teams[i].HeldCards) != 0 {
			t.Fatalf("team %d not reset: %+v", i, s.Teams[i])
		}
	}
	if !cardConservation(s) {
		t.Fatalf("card conservation violated at start")
	}

	// All dealt cards are unique and in range.
	seen := map[game.Card]bool{*s.HiddenCard: true, *s.CurrentCard: true}
	for _, c := range s.Deck {
		if !game.ValidCard(c) {
			t.Fatalf("card %d out of range", c)
		}
		if seen[c] {
			t.Fatalf("duplicate card %d in deck", c)
		}
		seen[c] = true
	}
	if len(seen) != game.TotalCards {
		t.Fatalf("expected %d unique cards, got %d", game.TotalCards, len(seen))
	}
}

func TestInitializeRequiresTeams(t *testing.T) {
	if _, err := Initialize(lobbyRoom(0, 10)); !errors.Is(err, ErrNoTeams) {
		t.Fatalf("expected ErrNoTeams, got %v", err)
	}
}

func TestPassAdvancesTurn(t *testing.T) {
	s := playingRoom(t, 3, 10)
	before := *s.CurrentCard

	next, err := ApplyAction(s, "team-0", game.ActionPass)
	if err != nil {
		t.Fatalf("pass rejected: %v", err)
	}
	if next.Teams[0].Chips != 9 || next.Pot != 1 {
		t.Fatalf("pass accounting wrong: chips=%d pot=%d", next.Teams[0].Chips, next.Pot)
	}
	if next.Teams[0].Score != 9 {
		t.Fatalf("score not recomputed after pass: %d", next.Teams[0].Score)
	}
	if next.CurrentTeamIndex != 1 {
		t.Fatalf("expected turn to advance to team 1, got %d", next.CurrentTeamIndex)
	}
	if *next.CurrentCard != before || next.TurnCount != 1 || len(next.Deck) != len(s.Deck) {
		t.Fatalf("pass must not touch the face-up card, turn count or deck")
	}
	if next.LastPassedTeamIndex == nil || *next.LastPassedTeamIndex != 0 {
		t.Fatalf("expected lastPassedTeamIndex=0")
	}

	// The input state is untouched.
	if s.Teams[0].Chips != 10 || s.Pot != 0 || s.CurrentTeamIndex != 0 {
		t.Fatalf("ApplyAction mutated its input")
	}

	// Wrap-around: the last team's pass returns to team 0.
	s2 := next
	for _, id := range []string{"team-1", "team-2"} {
		s2, err = ApplyAction(s2, id, game.ActionPass)
		if err != nil {
			t.Fatalf("pass rejected: %v", err)
		}
	}
	if s2.CurrentTeamIndex != 0 {
		t.Fatalf("expected wrap to team 0, got %d", s2.CurrentTeamIndex)
	}
}

func TestTakeKeepsTurn(t *testing.T) {
	s := playingRoom(t, 3, 10)
	s, err := ApplyAction(s, "team-0", game.ActionPass)
	if err != nil {
		t.Fatalf("pass rejected: %v", err)
	}
	taken := *s.CurrentCard
	deckTop := s.Deck[0]

	next, err := ApplyAction(s, "team-1", game.ActionTake)
	if err != nil {
		t.Fatalf("take rejected: %v", err)
	}
	team := next.Teams[1]
	if len(team.HeldCards) != 1 || team.HeldCards[0] != taken {
		t.Fatalf("expected team 1 to hold %d, got %v", taken, team.HeldCards)
	}
	if team.Chips != 11 || next.Pot != 0 {
		t.Fatalf("pot payout wrong: chips=%d pot=%d", team.Chips, next.Pot)
	}
	if team.Score != team.Chips-taken.Magnitude() {
		t.Fatalf("score not recomputed after take: %d", team.Score)
	}
	if next.CurrentTeamIndex != 1 {
		t.Fatalf("take must not advance the turn, got team %d", next.CurrentTeamIndex)
	}
	if *next.CurrentCard != deckTop || next.TurnCount != 2 {
		t.Fatalf("expected next card %d on turn 2, got %d on turn %d", deckTop, *next.CurrentCard, next.TurnCount)
	}
	if next.LastPassedTeamIndex != nil {
		t.Fatalf("take must clear lastPassedTeamIndex")
	}
	if !cardConservation(next) {
		t.Fatalf("card conservation violated after take")
	}
}

func TestActionPreconditions(t *testing.T) {
	s := playingRoom(t, 3, 10)

	if _, err := ApplyAction(s, "team-9", game.ActionPass); !errors.Is(err, ErrUnknownTeam) {
		t.Fatalf("expected ErrUnknownTeam, got %v", err)
	}
	if _, err := ApplyAction(s, "team-1", game.ActionPass); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("expected ErrNotYourTurn, got %v", err)
	}
	if _, err := ApplyAction(s, "team-0", game.Action("FOLD")); !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}

	lobby := lobbyRoom(3, 10)
	if _, err := ApplyAction(lobby, "team-0", game.ActionTake); !errors.Is(err, ErrGameNotActive) {
		t.Fatalf("expected ErrGameNotActive, got %v", err)
	}

	// Every variant belongs to the ErrInvalidAction family.
	for _, err := range []error{ErrUnknownTeam, ErrNotYourTurn, ErrInsufficientResources, ErrGameNotActive, ErrUnknownAction} {
		if !errors.Is(err, ErrInvalidAction) {
			t.Fatalf("%v does not wrap ErrInvalidAction", err)
		}
	}
}

func TestZeroChipsMustTake(t *testing.T) {
	s := playingRoom(t, 2, 10)
	s.Teams[0].Chips = 0
	s.Teams[0].Score = ComputeScore(&s.Teams[0])

	if _, err := ApplyAction(s, "team-0", game.ActionPass); !errors.Is(err, ErrInsufficientResources) {
		t.Fatalf("expected ErrInsufficientResources, got %v", err)
	}
	if _, err := ApplyAction(s, "team-0", game.ActionTake); err != nil {
		t.Fatalf("take with zero chips must succeed, got %v", err)
	}
}

func TestPassReplayRejected(t *testing.T) {
	s := playingRoom(t, 3, 10)
	next, err := ApplyAction(s, "team-0", game.ActionPass)
	if err != nil {
		t.Fatalf("pass rejected: %v", err)
	}
	// Replaying the identical action against the advanced state is not
	// the replayer's turn anymore.
	if _, err := ApplyAction(next, "team-0", game.ActionPass); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("expected replay to fail with ErrNotYourTurn, got %v", err)
	}
}

func TestTerminationAfterAllTakes(t *testing.T) {
	s := playingRoom(t, 3, 10)

	takes := 0
	for s.Phase == game.PhasePlaying {
		// Interleave a pass every third card to show passes never consume
		// cards.
		if takes%3 == 0 && s.CurrentTeam().Chips > 0 {
			var err error
			s, err = ApplyAction(s, s.CurrentTeam().TeamUUID, game.ActionPass)
			if err != nil {
				t.Fatalf("pass rejected: %v", err)
			}
		}
		var err error
		s, err = ApplyAction(s, s.CurrentTeam().TeamUUID, game.ActionTake)
		if err != nil {
			t.Fatalf("take rejected: %v", err)
		}
		takes++
		if !cardConservation(s) {
			t.Fatalf("card conservation violated after take %d", takes)
		}
		if takes > game.TotalCards {
			t.Fatalf("game did not terminate")
		}
	}

	// Every card except the hidden one gets taken, exactly once each.
	if takes != game.TotalCards-1 {
		t.Fatalf("expected %d takes to finish, got %d", game.TotalCards-1, takes)
	}
	if s.Phase != game.PhaseFinished || s.CurrentCard != nil {
		t.Fatalf("expected FINISHED with no face-up card")
	}
	if s.Winner == "" {
		t.Fatalf("expected a winner to be declared")
	}
	for i := range s.Teams {
		if s.Teams[i].Score != ComputeScore(&s.Teams[i]) {
			t.Fatalf("final score drifted for team %d", i)
		}
	}

	// FINISHED rooms accept no further actions.
	if _, err := ApplyAction(s, s.Teams[0].TeamUUID, game.ActionTake); !errors.Is(err, ErrGameNotActive) {
		t.Fatalf("expected ErrGameNotActive after finish, got %v", err)
	}
}

func TestAuctionScenario(t *testing.T) {
	// Three teams with 3 chips each bid on a -30 project.
	s := playingRoom(t, 3, 3)
	card := game.Card(-30)
	s.CurrentCard = &card

	s, err := ApplyAction(s, "team-0", game.ActionPass)
	if err != nil {
		t.Fatalf("pass rejected: %v", err)
	}
	s, err = ApplyAction(s, "team-1", game.ActionPass)
	if err != nil {
		t.Fatalf("pass rejected: %v", err)
	}
	if s.Teams[0].Chips != 2 || s.Teams[1].Chips != 2 || s.Pot != 2 {
		t.Fatalf("pot build-up wrong: %d/%d pot=%d", s.Teams[0].Chips, s.Teams[1].Chips, s.Pot)
	}

	s, err = ApplyAction(s, "team-2", game.ActionTake)
	if err != nil {
		t.Fatalf("take rejected: %v", err)
	}
	c := s.Teams[2]
	if c.Chips != 5 {
		t.Fatalf("expected taker chips 3+2=5, got %d", c.Chips)
	}
	if len(c.HeldCards) != 1 || c.HeldCards[0] != -30 {
		t.Fatalf("expected holdings [-30], got %v", c.HeldCards)
	}
	if c.Score != 5-30 {
		t.Fatalf("expected score -25, got %d", c.Score)
	}
	if s.Pot != 0 || s.CurrentTeamIndex != 2 {
		t.Fatalf("taker must open the next card: pot=%d team=%d", s.Pot, s.CurrentTeamIndex)
	}
}

func TestReset(t *testing.T) {
	s := playingRoom(t, 3, 10)
	s, err := ApplyAction(s, "team-0", game.ActionTake)
	if err != nil {
		t.Fatalf("take rejected: %v", err)
	}

	fresh := Reset(s)
	if fresh.Phase != game.PhaseLobby {
		t.Fatalf("expected LOBBY after reset, got %s", fresh.Phase)
	}
	if len(fresh.Teams) != 0 || len(fresh.Deck) != 0 || fresh.CurrentCard != nil || fresh.HiddenCard != nil {
		t.Fatalf("reset must clear the table")
	}
	if fresh.MaxTeams != s.MaxTeams || fresh.StartingChips != s.StartingChips {
		t.Fatalf("reset must keep the room configuration")
	}
}
