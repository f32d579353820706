// Package smaz compresses very short strings with fixed shared dictionaries.
//
// # Overview
//
// The codec replaces substrings with single-byte codes drawn from a
// dictionary of up to 253 common fragments that encoder and decoder agree
// on out of band. There is no per-message model and no header: a
// compressed URL or log line costs only the bytes of its tokens, so
// strings of a dozen bytes still shrink where general-purpose compressors
// expand them.
//
// Bytes no dictionary entry covers travel as escaped literals (code 254
// prefixes one raw byte, code 255 a run of up to 255 bytes), and the
// encoder falls back to pure literal runs whenever dictionary tokens would
// expand the input, so output length never exceeds WorstCaseSize of the
// input length.
//
// # When to Use
//
//   - URLs, cache keys, and queue payloads of tens of bytes
//   - log fragments and chat messages stored row by row
//   - columns of short strings compressed value by value
//
// # When NOT to Use
//
//   - inputs past a few hundred bytes with internal redundancy (zstd or
//     gzip win there; see cmd/smazbench for the crossover)
//   - binary or encrypted data (only the bounded-expansion guarantee
//     applies)
//   - text unlike the dictionary's languages (build a custom Dictionary
//     from a representative entry list instead)
//
// # Dictionaries
//
// Two built-ins ship. English is the classic table, biased toward English
// prose and HTML-ish fragments. Multilingual spreads its codes across
// western European languages, accented letters and web patterns. Custom
// tables come from NewDictionary and serialize with WriteTo/ReadFrom so
// they can be stored next to the data they compressed.
//
// The compressed stream does not identify its dictionary; decoding with a
// different table than the encoder used produces garbage or a DecodeError.
//
// # Basic Usage
//
//	comp := smaz.Encode(nil, []byte("http://example.com/index.html"))
//
//	orig, err := smaz.Decode(nil, comp)
//	if err != nil {
//		// stream was not produced by the English dictionary
//	}
//
//	// Explicit dictionaries, reusing an output buffer:
//	d := smaz.Multilingual()
//	buf := make([]byte, 0, 64)
//	buf = d.Encode(buf, []byte("¿cómo estás?"))
//
// # Performance Characteristics
//
// Encoding probes the reverse map at most 7 times per input byte, O(7·n);
// decoding is one table access per token, O(output). A Dictionary is a few
// KB and is safe to share between goroutines, so one instance per process
// serves all callers.
package smaz
