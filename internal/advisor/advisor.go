package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/1970jjh/minusproject/internal/dedupe"
	"github.com/1970jjh/minusproject/internal/engine"
	"github.com/1970jjh/minusproject/internal/game"
	"github.com/1970jjh/minusproject/internal/llmclient"
)

// advicePromptTemplate can be set at application startup to customize the
// prompt used when requesting strategic advice. Use the token {{situation}}
// where the generated game summary is substituted.
var advicePromptTemplate string

// SetAdvicePromptTemplate sets a custom prompt template for advice
// generation. Call from main after loading configuration.
func SetAdvicePromptTemplate(t string) {
	advicePromptTemplate = strings.TrimSpace(t)
}

const systemRole = "You are an expert strategist for the Minus Auction bidding game. Teams bid on negative-value projects; passing costs a chip, taking collects the project and the pot, and consecutive project values forgive all but the smallest debt of each run."

// BuildSituation renders a read-only snapshot of the game for the asking
// team: every team's resources and holdings, the card under auction, the pot
// and the turn distance. The engine never depends on any of this.
func BuildSituation(r *game.Room, teamUUID string) (string, error) {
	me := r.TeamByUUID(teamUUID)
	if me == nil {
		return "", fmt.Errorf("team %s not in room", teamUUID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Round %d. ", r.TurnCount)
	if r.CurrentCard != nil {
		fmt.Fprintf(&b, "Project under auction: %d. ", *r.CurrentCard)
	}
	fmt.Fprintf(&b, "Pot: %d chips. Projects left in the deck: %d.\n\n", r.Pot, len(r.Deck))

	total := len(r.Teams)
	for i := range r.Teams {
		t := &r.Teams[i]
		distance := (i - r.CurrentTeamIndex + total) % total
		tags := ""
		if t.TeamUUID == teamUUID {
			tags += " (our team)"
		}
		if i == r.CurrentTeamIndex {
			tags += " [to act]"
		}
		held := "none"
		if len(t.HeldCards) > 0 {
			parts := make([]string, len(t.HeldCards))
			for j, c := range t.HeldCards {
				parts[j] = fmt.Sprintf("%d", c)
			}
			held = strings.Join(parts, ", ")
		}
		fmt.Fprintf(&b, "- %s%s: %d chips, projects [%s], score %d, acts in %d turn(s)\n",
			t.Name, tags, t.Chips, held, engine.ComputeScore(t), distance)
	}

	b.WriteString("\nShould our team PASS or TAKE? Answer in 3-4 sentences with concrete reasoning.")
	return b.String(), nil
}

// Advise generates strategic advice for one team. Concurrent requests for
// the same room, team and turn collapse into a single LLM call.
func Advise(ctx context.Context, r *game.Room, teamUUID string) (string, error) {
	situation, err := BuildSituation(r, teamUUID)
	if err != nil {
		return "", err
	}

	prompt := advicePromptTemplate
	if prompt == "" {
		prompt = "Analyze the following auction state and advise the asking team:\n\n{{situation}}"
	}
	prompt = strings.ReplaceAll(prompt, "{{situation}}", situation)

	key := fmt.Sprintf("%s:%s:%d", r.JoinCode, teamUUID, r.TurnCount)
	v, err, _ := dedupe.AdviceGroup.Do(key, func() (interface{}, error) {
		return llmclient.Complete(ctx, systemRole, prompt)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
