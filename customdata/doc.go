// Package customdata layers a key index and frame-stamped pose names over
// the host's per-object custom data store.
//
// The host can look up a custom data value by key but cannot list keys, so
// every key written through Update is also recorded in the special "Keys"
// entry as a ";" separated list. Writing "PoseName" also writes
// "PoseName#<frame>" so each keyframe remembers which pose set it.
//
//	customdata.Update(fig, frame, []customdata.Entry{{Key: "PoseName", Value: path}})
//	name, key, ok := customdata.PoseName(fig, actor, frame, customdata.UseLast())
//	entries := customdata.List(fig)   // natural order: PoseName#2 before PoseName#10
package customdata
