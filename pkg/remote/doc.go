// Package remote implements a WebSocket-backed history host.
//
// A remote.Host fans committed navigations out to connected browser
// shells as JSON push/replace messages; shells report back/forward
// traversal back as pop messages, which the host translates into
// history.PopEvents for the adapter. The Segment chain itself never
// crosses the wire; pop resolution on the pipeline side happens by path.
//
// Mount the host on any mux:
//
//	host := remote.NewHost()
//	http.HandleFunc("/_wayfare/ws", host.HandleWebSocket)
package remote
