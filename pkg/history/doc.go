// Package history bridges the navigation pipeline to a history host.
//
// A Host abstracts the browser's back/forward mechanism behind push,
// replace, and pop-notification operations. The package ships a
// deterministic in-memory host for tests; package remote provides a
// WebSocket-backed host that drives real browser shells.
//
// The Adapter owns the base-href prefixing rules and installs exactly one
// pop listener on its host, translating back/forward traversal into pop
// navigations on the pipeline. It implements nav.History, so a connected
// adapter is also the pipeline's commit target:
//
//	host := history.NewMemoryHost()
//	adapter := history.NewAdapter(host)
//	pipe := nav.New(table, engine, outlet, nav.WithHistory(adapter))
//
//	if err := adapter.Connect(pipe, "/app", false); err != nil {
//	    ...
//	}
//	defer adapter.Disconnect()
package history
