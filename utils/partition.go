package utils

type PartitionMap struct {
	MaxIndex       int // MaxIndex is partitioned into ParallelDegree partitions
	ParallelDegree int
	Partitions     [][2]int // Beginning and end index of partitions
}

func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := 0; n < ParallelDegree; n++ {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

// Split1D returns the half-open index range [begin, end) owned by thread
// threadNum. Remainder indices are spread one per thread from the front so
// that partition sizes differ by at most one.
func (pm *PartitionMap) Split1D(threadNum int) (bucket [2]int) {
	var (
		size      = pm.MaxIndex / pm.ParallelDegree
		remainder = pm.MaxIndex % pm.ParallelDegree
	)
	if threadNum < remainder {
		bucket[0] = threadNum * (size + 1)
		bucket[1] = bucket[0] + size + 1
	} else {
		bucket[0] = remainder*(size+1) + (threadNum-remainder)*size
		bucket[1] = bucket[0] + size
	}
	return
}
