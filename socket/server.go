package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// NewServer initializes the Socket.IO server. Clients join one room per
// match; message creation broadcasts "newMessage" into that room.
func NewServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, matchID string) {
		if matchID == "" {
			log.Println("Ignoring join with empty matchId")
			return
		}
		log.Printf("Socket %s joined match %s", c.ID(), matchID)
		c.Join(matchID)
	})

	server.OnEvent("/", "leave", func(c socketio.Conn, matchID string) {
		if matchID == "" {
			return
		}
		c.Leave(matchID)
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		log.Println("Socket error:", err)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("Socket disconnected:", c.ID(), reason)
	})

	return server
}
