package service

import (
	"testing"
	"time"

	"github.com/1970jjh/minusproject/internal/game"
)

func TestCleanupStaleRooms(t *testing.T) {
	mr := &mockRepo{
		rooms: map[string]*game.Room{},
		stale: []game.Room{
			{JoinCode: "OLD00001"},
			{JoinCode: "OLD00002"},
		},
	}
	mr.stale[0].ID = 1
	mr.stale[1].ID = 2

	if n := CleanupStaleRooms(mr, time.Hour); n != 2 {
		t.Fatalf("expected 2 rooms removed, got %d", n)
	}
	if len(mr.deletedSets) != 2 || len(mr.deletedIDs) != 2 {
		t.Fatalf("expected teams and rooms deleted: sets=%v ids=%v", mr.deletedSets, mr.deletedIDs)
	}
}
