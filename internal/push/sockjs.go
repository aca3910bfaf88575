package push

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/igm/sockjs-go/sockjs"
	"github.com/sirupsen/logrus"
)

// Handler builds sockjs handler mounted at prefix, sessions are registered in hub until they close
func Handler(prefix string, h *Hub) http.Handler {
	return sockjs.NewHandler(prefix, sockjs.DefaultOptions, func(session sockjs.Session) {
		c := NewClient(uuid.NewString())
		h.Register(c)
		defer h.Unregister(c)

		if customerID := customerFromRequest(session.Request()); customerID != "" {
			h.Subscribe(c, customerID)
		}

		go func() {
			for msg := range c.Send {
				if err := session.Send(string(msg)); err != nil {
					logrus.Debugf("push: failed to send to client %s - %v", c.ID, err)
				}
			}
		}()

		for {
			msg, err := session.Recv()
			if err != nil {
				return
			}

			sub, ok := ParseSubscribe([]byte(msg))
			if !ok {
				continue
			}

			if sub.Action == "unsubscribe" {
				h.Subscribe(c, "")
				continue
			}
			h.Subscribe(c, strings.TrimSpace(sub.CustomerID))
		}
	})
}

func customerFromRequest(r *http.Request) string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(r.URL.Query().Get("customerId"))
}
