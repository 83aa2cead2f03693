// Package id generates unique identifiers for container instances.
package id

import (
	"log"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/rs/xid"
)

var generatorMutex sync.Mutex
var generatorInstantiated bool
var generator Generator

// Generator can generate IDs.
type Generator interface {
	// Generate an ID.
	Generate() string
}

// UseSequentialGenerator configures the module-level generator to produce
// deterministic sequential IDs.
func UseSequentialGenerator() {
	generatorMutex.Lock()
	defer generatorMutex.Unlock()

	if generatorInstantiated {
		log.Panic("cannot change id generator type after using it")
	}

	generator = &sequentialGenerator{}
	generatorInstantiated = true
}

// UseParallelGenerator configures the module-level generator to produce IDs
// that are safe to generate from multiple goroutines without coordination.
// The IDs generated are not deterministic anymore.
func UseParallelGenerator() {
	generatorMutex.Lock()
	defer generatorMutex.Unlock()

	if generatorInstantiated {
		log.Panic("cannot change id generator type after using it")
	}

	generator = parallelGenerator{}
	generatorInstantiated = true
}

// GetGenerator returns the module-level ID generator, defaulting to the
// sequential one.
func GetGenerator() Generator {
	generatorMutex.Lock()
	defer generatorMutex.Unlock()

	if !generatorInstantiated {
		generator = &sequentialGenerator{}
		generatorInstantiated = true
	}

	return generator
}

type sequentialGenerator struct {
	nextID uint64
}

func (g *sequentialGenerator) Generate() string {
	idNumber := atomic.AddUint64(&g.nextID, 1)

	return strconv.FormatUint(idNumber, 10)
}

type parallelGenerator struct {
}

func (g parallelGenerator) Generate() string {
	return xid.New().String()
}
