package service

import "github.com/1970jjh/minusproject/internal/game"

// Publisher receives the room aggregate after every accepted mutation so
// subscribers see each new state. A nil Publisher disables fanout.
type Publisher interface {
	PublishRoom(r *game.Room)
}

func publish(pub Publisher, r *game.Room) {
	if pub != nil {
		pub.PublishRoom(r)
	}
}
