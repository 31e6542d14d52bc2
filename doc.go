// Package graphid provides prefixed, sequential identifiers for graph
// elements together with the validation contract a graph engine needs to
// accept or look up identifiers.
//
// The module is layered:
//
//   - sequence  – monotonic, lock-free counters and their sharing scopes
//   - idmanager – per-namespace identifier managers (allocate/allow/normalize)
//   - registry  – a reference host keying vertices and edges on a DAO
//   - dao       – memory and afs backed element stores
//
// Most applications use the Service façade of the root package:
//
//	srv, _ := graphid.New()
//	id, _ := srv.Vertices().Next()                      // "V0"
//	v, _ := srv.Registry().AddVertex(ctx, nil, "person", nil)
//
// For more details see the individual sub-packages.
package graphid
