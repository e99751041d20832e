package main

import (
	"time"

	"github.com/1970jjh/minusproject/internal/realtime"
	"github.com/1970jjh/minusproject/internal/service"
	"github.com/1970jjh/minusproject/internal/storage"
)

// startStaleRoomScanner periodically removes rooms that nobody has touched
// for longer than the configured TTL, and tears down their realtime topics.
func startStaleRoomScanner(repo storage.Repository, hub *realtime.Hub, ttl time.Duration) {
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			cutoff := time.Now().Add(-ttl)
			stale, err := repo.FindStaleRooms(cutoff)
			if err == nil {
				for i := range stale {
					hub.Forget(stale[i].JoinCode)
				}
			}
			service.CleanupStaleRooms(repo, ttl)
		}
	}()
}
