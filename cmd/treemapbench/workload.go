// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/btree"
	"github.com/jba/treemap"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// An op is one step of a workload: set Key to Value, or remove Key.
type op struct {
	Key    int
	Value  uint64
	Delete bool
}

// generator produces a reproducible stream of ops. A delete always
// names a key that is live at that point of the stream.
type generator struct {
	r          *rand.Rand
	keySpace   int
	deleteFrac float64
	live       []int
	index      map[int]int // key -> position in live
}

func newGenerator(seed uint64, n int, deleteFrac float64) *generator {
	return &generator{
		r:          rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		keySpace:   4 * max(n, 1),
		deleteFrac: deleteFrac,
		index:      map[int]int{},
	}
}

func (g *generator) next() op {
	if len(g.live) > 0 && g.r.Float64() < g.deleteFrac {
		i := g.r.IntN(len(g.live))
		k := g.live[i]
		last := len(g.live) - 1
		g.live[i] = g.live[last]
		g.index[g.live[i]] = i
		g.live = g.live[:last]
		delete(g.index, k)
		return op{Key: k, Delete: true}
	}
	k := g.r.IntN(g.keySpace)
	if _, ok := g.index[k]; !ok {
		g.index[k] = len(g.live)
		g.live = append(g.live, k)
	}
	return op{Key: k, Value: g.r.Uint64()}
}

type kv struct {
	k int
	v uint64
}

// runner applies a workload to a map and to a B-tree reference.
type runner struct {
	log     zerolog.Logger
	ops     *prometheus.CounterVec
	size    *prometheus.GaugeVec
	elapsed *prometheus.GaugeVec
}

func newRunner(log zerolog.Logger, reg prometheus.Registerer) *runner {
	r := &runner{
		log: log,
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "treemap_ops_total",
			Help: "number of operations applied to the map",
		}, []string{"balance", "op"}),
		size: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "treemap_size",
			Help: "number of entries in the map after the run",
		}, []string{"balance"}),
		elapsed: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "treemap_run_seconds",
			Help: "wall time of the run",
		}, []string{"balance"}),
	}
	reg.MustRegister(r.ops, r.size, r.elapsed)
	return r
}

// run applies n ops from a generator seeded with seed to a fresh map
// balanced by bal, then verifies the map against the reference.
func (r *runner) run(bal treemap.Balance, n int, seed uint64, deleteFrac float64) error {
	gen := newGenerator(seed, n, deleteFrac)
	m := treemap.New[int, uint64](treemap.WithBalance(bal))
	ref := btree.NewG(32, func(a, b kv) bool { return a.k < b.k })
	sets := r.ops.WithLabelValues(bal.String(), "set")
	deletes := r.ops.WithLabelValues(bal.String(), "delete")

	start := time.Now()
	since := start
	for i := 1; i <= n; i++ {
		o := gen.next()
		if o.Delete {
			if !m.Delete(o.Key) {
				return fmt.Errorf("op %d: key %d missing on delete", i, o.Key)
			}
			ref.Delete(kv{k: o.Key})
			deletes.Inc()
		} else {
			m.Set(o.Key, o.Value)
			ref.ReplaceOrInsert(kv{o.Key, o.Value})
			sets.Inc()
		}
		if i%100_000 == 0 {
			r.log.Info().Msgf("%s: applied %s ops in %s; %s ops/s",
				bal,
				humanize.Comma(int64(i)),
				time.Since(since),
				humanize.Comma(int64(100_000/time.Since(since).Seconds())))
			since = time.Now()
		}
	}
	d := time.Since(start)
	r.elapsed.WithLabelValues(bal.String()).Set(d.Seconds())
	r.size.WithLabelValues(bal.String()).Set(float64(m.Len()))

	if err := verify(m, ref); err != nil {
		return fmt.Errorf("%s: %w", bal, err)
	}
	r.log.Info().
		Str("balance", bal.String()).
		Str("entries", humanize.Comma(int64(m.Len()))).
		Dur("elapsed", d).
		Msg("run verified")
	return nil
}

// verify checks m's invariants and compares its entries with ref in order.
func verify(m *treemap.Map[int, uint64], ref *btree.BTreeG[kv]) error {
	if err := m.Check(); err != nil {
		return err
	}
	if m.Len() != ref.Len() {
		return fmt.Errorf("map has %d entries, reference has %d", m.Len(), ref.Len())
	}
	it := m.Begin()
	var err error
	ref.Ascend(func(e kv) bool {
		k, kerr := it.Key()
		v, _ := it.Value()
		switch {
		case kerr != nil:
			err = fmt.Errorf("map ended before key %d", e.k)
		case k != e.k || *v != e.v:
			err = fmt.Errorf("map has %d=%d, reference has %d=%d", k, *v, e.k, e.v)
		default:
			err = it.Next()
		}
		return err == nil
	})
	return err
}
