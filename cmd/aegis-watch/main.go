// aegis-watch tails the realtime feed from a terminal: it connects to the
// server's WebSocket endpoint and prints every risk update and SOS alert.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/gorilla/websocket"

	"github.com/avinya-safety/aegis/internal/models"
)

type envelope struct {
	Type       string          `json:"type"`
	Data       json.RawMessage `json:"data"`
	TotalZones int             `json:"totalZones"`
}

func main() {
	addr := flag.String("addr", "ws://localhost:3001/ws", "server websocket URL")
	flag.Parse()

	conn, _, err := websocket.DefaultDialer.Dial(*addr, nil)
	if err != nil {
		log.Fatalf("dial %s: %v", *addr, err)
	}
	defer conn.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				log.Printf("read: %v", err)
				return
			}

			var msg envelope
			if err := json.Unmarshal(raw, &msg); err != nil {
				continue
			}

			switch msg.Type {
			case "RISK_UPDATE":
				var zones []models.RiskZone
				if err := json.Unmarshal(msg.Data, &zones); err != nil {
					continue
				}
				fmt.Printf("risk update: %d zones\n", len(zones))
				for _, z := range zones {
					if z.Risk == models.RiskHigh {
						fmt.Printf("  HIGH %s, %s: %s (score %d)\n", z.Name, z.State, z.Disaster, z.RiskScore)
					}
				}
			case "SOS_ALERT":
				var alert models.SosAlert
				if err := json.Unmarshal(msg.Data, &alert); err != nil {
					continue
				}
				fmt.Printf("SOS %s at %.4f,%.4f: %s\n", alert.ID, alert.Lat, alert.Lon, alert.Message)
			}
		}
	}()

	select {
	case <-done:
	case <-interrupt:
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		<-done
	}
}
