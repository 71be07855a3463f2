// Package uuidgen generates batches of RFC 4122 UUIDs of versions 1, 3, 4 and 5
// and streams them to a file or standard output in one of three encodings.
//
// The UUID algorithms themselves come from github.com/gofrs/uuid/v5. This
// package owns what surrounds them: the node id used by version 1, the
// timestamp context that keeps version 1 values distinct within one clock
// tick, the record encodings and the generation loop.
//
// Basic Usage:
//
//	cfg := uuidgen.DefaultConfig()
//	cfg.Version = uuidgen.VersionRandom
//	cfg.Count = 3
//	if err := uuidgen.Run(context.Background(), cfg, os.Stdout, uuidgen.Options{}); err != nil {
//	    log.Fatal(err)
//	}
//
// Custom Generator:
//
//	node, _ := uuidgen.RandomNode(nil)
//	ctx := uuidgen.NewContext(node)
//	gen, _ := uuidgen.NewGenerator(uuidgen.VersionTimeBased, ctx, nil)
//	for i := 0; i < 1000; i++ {
//	    id, err := gen.Next()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    ctx.Reset() // optional: restart the clock sequence
//	    // Use id...
//	}
//
// Encodings:
//
//   - BIN: the raw 16 bytes, records concatenated without delimiter
//   - STR: canonical 8-4-4-4-12 lowercase hex, one per line
//   - SIV: the 128-bit value as a base-10 integer, one per line
//
// Versions 3 and 5 hash the fixed name NameURL under NamespaceURL, so every
// run yields the same value for each of them.
//
// Thread Safety:
//
// Context and Generator are owned by a single goroutine; they carry no locks.
package uuidgen
