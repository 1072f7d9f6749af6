// Package widgets declares what the hub offers the dashboard host.
//
// The host discovers widgets by fetching /widgets.json (descriptors keyed by
// widget id: payload type, endpoint, default grid size, parameters) and
// /apps.json (the prebuilt dashboard laying those widgets out across tabs).
// Both documents are immutable values assembled here at startup; the ids
// they reference are exactly the endpoints the HTTP layer registers.
package widgets
