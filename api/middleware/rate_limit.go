package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// clientState tracks one client's request count inside the current window.
type clientState struct {
	windowStart time.Time
	count       int
}

// RateLimit limits each client address to maxRequests per window, answering
// 429 beyond that. maxRequests <= 0 disables the limit. Counts reset when a
// full window has passed since the client's window started (fixed window,
// matching the behavior the frontend already expects from the OTP endpoint).
func RateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	if maxRequests <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	var mu sync.Mutex
	clients := make(map[string]*clientState)

	// Drop clients idle for two full windows so the map cannot grow without
	// bound.
	go func() {
		for range time.Tick(window) {
			mu.Lock()
			for ip, state := range clients {
				if time.Since(state.windowStart) > 2*window {
					delete(clients, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		state, ok := clients[ip]
		if !ok || now.Sub(state.windowStart) > window {
			state = &clientState{windowStart: now}
			clients[ip] = state
		}
		state.count++
		limited := state.count > maxRequests
		mu.Unlock()

		if limited {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests, please try again later",
			})
			return
		}
		c.Next()
	}
}
