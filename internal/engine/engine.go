package engine

import (
	"fmt"
	"math/rand"

	"github.com/1970jjh/minusproject/internal/game"
)

// The turn engine is pure: every function takes the current room aggregate,
// clones it, and returns the next state. Callers own persistence and
// broadcast; the engine holds nothing and performs no I/O. An action either
// fully applies or is rejected with the input untouched.

// newDeck builds the full card range in a uniformly random order.
func newDeck() game.CardList {
	deck := make(game.CardList, 0, game.TotalCards)
	for c := game.CardMin; c <= game.CardMax; c++ {
		deck = append(deck, c)
	}
	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// Initialize deals a fresh game into the given room and returns the new
// state: full deck shuffled, one card set aside face-down, the next card
// turned up, every team reset to the starting chip count. The caller is
// responsible for enforcing the min/max team bounds before starting.
func Initialize(r *game.Room) (*game.Room, error) {
	if len(r.Teams) == 0 {
		return nil, ErrNoTeams
	}

	s := r.Clone()
	deck := newDeck()

	hidden := deck[0]
	current := deck[1]
	s.Deck = deck[2:]
	s.HiddenCard = &hidden
	s.CurrentCard = &current

	s.Pot = 0
	s.CurrentTeamIndex = 0
	s.TurnCount = 1
	s.Phase = game.PhasePlaying
	s.LastPassedTeamIndex = nil
	s.Winner = ""
	s.Logs = game.LogList{}
	s.AdviceUsage = game.UsageMap{}

	for i := range s.Teams {
		s.Teams[i].Chips = s.StartingChips
		s.Teams[i].HeldCards = game.CardList{}
		s.Teams[i].Score = s.StartingChips
	}

	s.Message = "The auction has started."
	s.AppendLog(fmt.Sprintf("Game started with %d teams. First project up: %d.", len(s.Teams), current))
	return s, nil
}

// ApplyAction resolves one PASS or TAKE for the identified team and returns
// the next state. Violated preconditions reject the action without mutating
// anything.
func ApplyAction(r *game.Room, teamUUID string, action game.Action) (*game.Room, error) {
	if r.Phase != game.PhasePlaying {
		return nil, ErrGameNotActive
	}
	acting := r.TeamByUUID(teamUUID)
	if acting == nil {
		return nil, ErrUnknownTeam
	}
	current := r.CurrentTeam()
	if current == nil || current.TeamUUID != teamUUID {
		return nil, ErrNotYourTurn
	}

	switch action {
	case game.ActionPass:
		if acting.Chips <= 0 {
			return nil, ErrInsufficientResources
		}
		return applyPass(r), nil
	case game.ActionTake:
		return applyTake(r), nil
	default:
		return nil, ErrUnknownAction
	}
}

// applyPass: one chip into the pot, turn moves to the next team. The face-up
// card and turn count do not change.
func applyPass(r *game.Room) *game.Room {
	s := r.Clone()
	idx := s.CurrentTeamIndex
	team := &s.Teams[idx]

	team.Chips--
	s.Pot++
	team.Score = ComputeScore(team)

	s.LastPassedTeamIndex = &idx
	s.CurrentTeamIndex = (idx + 1) % len(s.Teams)
	s.Message = fmt.Sprintf("%s passed.", team.Name)
	s.AppendLog(fmt.Sprintf("%s passed. Pot is now %d.", team.Name, s.Pot))
	return s
}

// applyTake: the acting team collects the face-up card and the pot, and the
// same team opens the bidding on the next card. Taking the last card ends
// the game.
func applyTake(r *game.Room) *game.Room {
	s := r.Clone()
	team := &s.Teams[s.CurrentTeamIndex]

	taken := *s.CurrentCard
	team.HeldCards = append(team.HeldCards, taken)
	team.Chips += s.Pot
	potWon := s.Pot
	s.Pot = 0
	team.Score = ComputeScore(team)
	s.LastPassedTeamIndex = nil

	s.AppendLog(fmt.Sprintf("%s took project %d and %d chips from the pot.", team.Name, taken, potWon))

	if len(s.Deck) > 0 {
		next := s.Deck[0]
		s.Deck = s.Deck[1:]
		s.CurrentCard = &next
		s.TurnCount++
		s.Message = fmt.Sprintf("%s took %d. Next project: %d.", team.Name, taken, next)
		return s
	}

	// Deck exhausted: final scoring pass over every team.
	s.CurrentCard = nil
	s.Phase = game.PhaseFinished
	for i := range s.Teams {
		s.Teams[i].Score = ComputeScore(&s.Teams[i])
	}
	if w := DetermineWinner(s.Teams); w >= 0 {
		s.Winner = s.Teams[w].Name
		s.Message = fmt.Sprintf("Game over. %s wins with a score of %d.", s.Winner, s.Teams[w].Score)
	} else {
		s.Message = "Game over."
	}
	if s.HiddenCard != nil {
		s.AppendLog(fmt.Sprintf("Game over. The hidden project was %d.", *s.HiddenCard))
	}
	if s.Winner != "" {
		s.AppendLog(s.Message)
	}
	return s
}

// Reset returns the room to an empty lobby with the same configuration.
// Teams are cleared; seats are claimed again as players join.
func Reset(r *game.Room) *game.Room {
	s := r.Clone()
	s.Phase = game.PhaseLobby
	s.Teams = []game.Team{}
	s.Deck = game.CardList{}
	s.CurrentCard = nil
	s.HiddenCard = nil
	s.Pot = 0
	s.CurrentTeamIndex = 0
	s.TurnCount = 0
	s.LastPassedTeamIndex = nil
	s.Logs = game.LogList{}
	s.AdviceUsage = game.UsageMap{}
	s.Winner = ""
	s.Message = "Waiting for teams to join."
	return s
}
