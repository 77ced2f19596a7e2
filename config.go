// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

import "fmt"

// Balance selects the rebalancing scheme of a map.
// It is fixed when the map is created.
type Balance int

const (
	// RedBlack keeps a color bit per node. It is the default.
	RedBlack Balance = iota
	// AVL keeps the height of every subtree and bounds the height
	// difference of siblings by one.
	AVL
)

func (b Balance) String() string {
	switch b {
	case RedBlack:
		return "red-black"
	case AVL:
		return "avl"
	default:
		return fmt.Sprintf("Balance(%d)", int(b))
	}
}

// ParseBalance returns the Balance named by s ("red-black", "rb" or "avl").
func ParseBalance(s string) (Balance, error) {
	switch s {
	case "red-black", "redblack", "rb":
		return RedBlack, nil
	case "avl":
		return AVL, nil
	}
	return 0, fmt.Errorf("%w: unknown balance %q", ErrInvalidConfig, s)
}

// An Option configures a map at construction.
type Option func(*config)

// WithBalance selects the rebalancing scheme.
func WithBalance(b Balance) Option {
	return func(cfg *config) {
		cfg.balance = b
	}
}

type config struct {
	balance Balance
}

func (cfg config) validate() error {
	if cfg.balance != RedBlack && cfg.balance != AVL {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, cfg.balance)
	}
	return nil
}

// newConfig applies opts and panics if the result is invalid.
func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		panic(err)
	}
	return cfg
}
