package graph6

import "github.com/jrenders/frank2/graph"

// decodeN parses the leading N(n) field of a graph6 payload, returning
// the vertex count and the number of bytes it consumed.
func decodeN(data []byte) (n int, consumed int, err error) {
	if len(data) == 0 {
		return 0, 0, ErrMalformed
	}
	if data[0] != 126 {
		n = int(data[0]) - 63
		if n < 0 {
			return 0, 0, ErrMalformed
		}

		return n, 1, nil
	}
	if len(data) < 4 {
		return 0, 0, ErrMalformed
	}

	n = (int(data[1]-63) << 12) | (int(data[2]-63) << 6) | int(data[3]-63)

	return n, 4, nil
}

// encodeN returns the N(n) field for n.
func encodeN(n int) []byte {
	if n <= 62 {
		return []byte{byte(n + 63)}
	}

	return []byte{
		126,
		byte((n>>12)&0x3f) + 63,
		byte((n>>6)&0x3f) + 63,
		byte(n&0x3f) + 63,
	}
}

// Decode parses a bare graph6 payload (no stream header; strip it first
// with StripHeader) into a cubic UndirectedGraph. Returns an error if
// the payload is malformed or the decoded graph is not cubic.
func Decode(payload string) (*graph.UndirectedGraph, error) {
	data := []byte(payload)
	n, consumed, err := decodeN(data)
	if err != nil {
		return nil, err
	}
	body := data[consumed:]

	need := n * (n - 1) / 2
	wantBytes := (need + 5) / 6
	if len(body) < wantBytes {
		return nil, ErrMalformed
	}

	g, err := graph.NewUndirectedGraph(n)
	if err != nil {
		return nil, err
	}

	br := &bitReader{data: body}
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			bit, err := br.next()
			if err != nil {
				return nil, err
			}
			if bit {
				if err := g.AddEdge(i, j); err != nil {
					return nil, err
				}
			}
		}
	}

	if err := g.Finalize(); err != nil {
		return nil, err
	}

	return g, nil
}

// Encode returns the bare graph6 payload for g (no stream header;
// prepend one with WithHeader if needed).
func Encode(g *graph.UndirectedGraph) string {
	out := encodeN(g.N)

	bw := &bitWriter{}
	for j := 1; j < g.N; j++ {
		for i := 0; i < j; i++ {
			bw.write(g.Adj[i].Has(j))
		}
	}
	out = append(out, bw.bytes()...)

	return string(out)
}
