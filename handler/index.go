package handler

import "restaurant_manager/realtime"

var hub *realtime.Hub

// InitHub injects the realtime hub constructed in main. Handlers never
// build their own connection layer.
func InitHub(h *realtime.Hub) {
	hub = h
}
