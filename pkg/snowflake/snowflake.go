// Package snowflake provides process-wide unique ID generation.
package snowflake

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	mu   sync.Mutex
	node *snowflake.Node
)

// Init creates the generator node. Node IDs outside [0, 1023] are rejected.
// Safe to call more than once; the last successful call wins.
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return err
	}

	mu.Lock()
	node = n
	mu.Unlock()
	return nil
}

// NextID returns the next unique ID. Init must have been called first.
func NextID() int64 {
	mu.Lock()
	n := node
	mu.Unlock()
	return n.Generate().Int64()
}
