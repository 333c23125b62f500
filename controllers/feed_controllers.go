package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/food-ordering-app/feed"
	"github.com/yeremiapane/food-ordering-app/middlewares"
)

type FeedController struct {
	hub      *feed.Hub
	upgrader websocket.Upgrader
	log      *logrus.Logger
}

// NewFeedController accepts upgrades only from allowedOrigins ("*" allows any).
func NewFeedController(hub *feed.Hub, allowedOrigins []string, log *logrus.Logger) *FeedController {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return &FeedController{
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed["*"] || allowed[origin]
			},
		},
		log: log,
	}
}

// OrderFeed -> GET /ws/orders?token=<access-token>
func (fc *FeedController) OrderFeed(c *gin.Context) {
	customer := middlewares.CurrentCustomer(c)
	if customer == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	ws, err := fc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		fc.log.WithError(err).Warn("Websocket upgrade failed")
		return
	}

	fc.hub.Register(ws, customer.UUID, middlewares.CurrentAccessToken(c), middlewares.SessionExpiresAt(c))
	defer fc.hub.Unregister(ws)

	// Klien tidak mengirim apa-apa; baca hanya untuk mendeteksi disconnect
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}
}
