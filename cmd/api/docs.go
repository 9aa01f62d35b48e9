package main

// @title Matzip Radar API
// @version 1.0
// @description Location-based restaurant and bar recommendation API. Proxies Google Places and Naver local search with a demo-mode fallback.

// @host localhost:8080
// @BasePath /
