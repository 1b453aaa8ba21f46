// Package pathutil builds JSON paths for locations inside model documents.
//
// [PathBuilder] uses push/pop semantics so recursive traversal can track its
// position without allocating a string per node; the path is materialized
// only for nodes that produce a text instance:
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.Push("shapes")
//	path.Push("example.weather#City") // $.shapes['example.weather#City']
//	path.PushIndex(0)                 // ...[0]
//	path.Pop()
package pathutil
