package workers

import (
	"github.com/cespare/xxhash/v2"
)

// Partitionable messages are routed to a worker by their partition key.
type Partitionable interface {
	PartitionKey() string
}

func getIndexByHash(msg Partitionable, numChs int) int {
	switch numChs {
	case 0:
		panic("number of channels cannot be 0")
	case 1:
		return 0
	default:
		return int(xxhash.Sum64String(msg.PartitionKey()) % uint64(numChs))
	}
}
