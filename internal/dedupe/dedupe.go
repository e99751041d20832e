package dedupe

// Package dedupe provides shared singleflight groups used to deduplicate
// concurrent LLM generation requests. Using a centralized singleflight.Group
// ensures only one generation job runs for a given key while other callers
// wait for the result.

import "golang.org/x/sync/singleflight"

// AdviceGroup deduplicates strategic-advice requests keyed by
// "<roomCode>:<teamUUID>:<turn>".
var AdviceGroup singleflight.Group

// RecapGroup deduplicates recap text and poster generation keyed by the
// canonical recap key.
var RecapGroup singleflight.Group
