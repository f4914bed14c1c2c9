package vdom

import "strings"

// On attaches an event handler under the given event name. The handler
// rides in Props like any other value; hosts that cannot represent handlers
// decide what to do with it (the in-memory document stores it, the HTML
// serializer skips it).
func On(event string, handler any) Attr {
	if !strings.HasPrefix(event, "on") {
		event = "on" + event
	}
	return Attr{Key: event, Value: handler}
}

// OnClick sets the onclick handler.
func OnClick(handler any) Attr { return On("click", handler) }

// OnInput sets the oninput handler.
func OnInput(handler any) Attr { return On("input", handler) }

// OnSubmit sets the onsubmit handler.
func OnSubmit(handler any) Attr { return On("submit", handler) }

// IsEventProp reports whether a prop key names an event handler.
func IsEventProp(key string) bool {
	return strings.HasPrefix(key, "on")
}
