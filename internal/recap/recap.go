package recap

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/1970jjh/minusproject/internal/dedupe"
	"github.com/1970jjh/minusproject/internal/engine"
	"github.com/1970jjh/minusproject/internal/game"
	"github.com/1970jjh/minusproject/internal/imageutil"
	"github.com/1970jjh/minusproject/internal/keys"
	"github.com/1970jjh/minusproject/internal/llmclient"
	"github.com/1970jjh/minusproject/internal/logging"
	"github.com/1970jjh/minusproject/internal/storage"
)

// ErrGameNotFinished rejects recap generation for live games.
var ErrGameNotFinished = errors.New("game is not finished")

const posterSize = 512

var (
	recapPromptTemplate  string
	posterPromptTemplate string
)

// SetRecapPromptTemplate overrides the analysis prompt. Use the token
// {{standings}} where the final standings are substituted.
func SetRecapPromptTemplate(t string) { recapPromptTemplate = strings.TrimSpace(t) }

// SetPosterPromptTemplate overrides the poster image prompt. Use the token
// {{standings}} where the final standings are substituted.
func SetPosterPromptTemplate(t string) { posterPromptTemplate = strings.TrimSpace(t) }

// BuildStandings renders the final result of a finished game: ranking,
// chips, held projects with forgiven runs, and the revealed hidden card.
func BuildStandings(r *game.Room) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Final standings after %d rounds:\n", r.TurnCount)
	for i := range r.Teams {
		t := &r.Teams[i]
		runParts := make([]string, 0, 4)
		for _, run := range engine.Runs(t.HeldCards) {
			cards := make([]string, len(run))
			for j, c := range run {
				cards[j] = fmt.Sprintf("%d", c)
			}
			runParts = append(runParts, "("+strings.Join(cards, ",")+")")
		}
		held := "none"
		if len(runParts) > 0 {
			held = strings.Join(runParts, " ")
		}
		marker := ""
		if t.Name == r.Winner {
			marker = " (WINNER)"
		}
		fmt.Fprintf(&b, "- %s: score %d, %d chips, projects %s%s\n", t.Name, t.Score, t.Chips, held, marker)
	}
	if r.HiddenCard != nil {
		fmt.Fprintf(&b, "The hidden project, never auctioned, was %d.\n", *r.HiddenCard)
	}
	return b.String()
}

// GetOrCreate returns the cached recap for a finished game, generating and
// persisting the analysis text and poster image on first request. Concurrent
// first requests collapse into one generation job. Poster failures do not
// fail the recap; the game itself never depends on any of this.
func GetOrCreate(ctx context.Context, repo storage.Repository, r *game.Room) (*game.Recap, error) {
	if r.Phase != game.PhaseFinished {
		return nil, ErrGameNotFinished
	}

	key := keys.RecapKey(r.JoinCode, r.Teams)
	if cached, err := repo.GetRecapByKey(key); err != nil {
		return nil, err
	} else if cached != nil {
		return cached, nil
	}

	v, err, _ := dedupe.RecapGroup.Do(key, func() (interface{}, error) {
		// Re-check inside the flight: a concurrent caller may have
		// persisted the recap while we waited.
		if cached, err := repo.GetRecapByKey(key); err != nil {
			return nil, err
		} else if cached != nil {
			return cached, nil
		}
		return generate(ctx, repo, r, key)
	})
	if err != nil {
		return nil, err
	}
	return v.(*game.Recap), nil
}

func generate(ctx context.Context, repo storage.Repository, r *game.Room, key string) (*game.Recap, error) {
	standings := BuildStandings(r)

	prompt := recapPromptTemplate
	if prompt == "" {
		prompt = "Write a short, punchy post-game analysis (5-6 sentences) of this Minus Auction match. Name the decisive moves and the winning strategy.\n\n{{standings}}"
	}
	prompt = strings.ReplaceAll(prompt, "{{standings}}", standings)

	genCtx, cancel := context.WithTimeout(ctx, 90*time.Second)
	defer cancel()

	text, err := llmclient.Complete(genCtx, "You are a sharp, entertaining commentator for auction-style board games.", prompt)
	if err != nil {
		return nil, err
	}

	rec := &game.Recap{RoomKey: key, RecapText: text}

	imgPrompt := posterPromptTemplate
	if imgPrompt == "" {
		imgPrompt = "A dramatic corporate-thriller movie poster celebrating the winning team of a project-bidding auction game. Bold title treatment, no real text, stylized skyscrapers and falling contract papers.\n\n{{standings}}"
	}
	imgPrompt = strings.ReplaceAll(imgPrompt, "{{standings}}", standings)

	if png, err := llmclient.GenerateImage(genCtx, imgPrompt); err != nil {
		logging.Error("poster generation failed", err, logging.Fields{"key": key})
	} else if resized, err := imageutil.ResizePNGBytes(png, posterSize, posterSize); err != nil {
		logging.Error("poster resize failed", err, logging.Fields{"key": key})
	} else {
		rec.PosterPNG = resized
	}

	if err := repo.SaveRecap(rec); err != nil {
		return nil, err
	}
	return rec, nil
}
