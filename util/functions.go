package util

import (
	"runtime"
	"sort"

	"github.com/kataras/golog"
)

func LogMemory(logger *golog.Logger) {
	s := &runtime.MemStats{}
	runtime.ReadMemStats(s)
	logger.Debug("*** Memory Info ***")
	logger.Debugf("Bytes Allocated InUse:\t%d", s.Alloc)
	logger.Debugf("Mallocs:\t\t%d", s.Mallocs)
	logger.Debugf("Frees:\t\t\t%d", s.Frees)
	logger.Debugf("Heap Allocated InUse:\t%d", s.HeapAlloc)
	logger.Debugf("Heap Objects:\t\t%d", s.HeapObjects)
	logger.Debug("*** ***")
}

type TopNStrIntDatum struct {
	S string
	N int
}

type TopNStrIntData []TopNStrIntDatum

func (arr TopNStrIntData) Len() int {
	return len(arr)
}

func (arr TopNStrIntData) Swap(a, b int) {
	arr[a], arr[b] = arr[b], arr[a]
}

// Less orders by descending count, then by string so ties are stable
func (arr TopNStrIntData) Less(a, b int) bool {
	if arr[a].N == arr[b].N {
		return arr[a].S < arr[b].S
	}
	return arr[a].N > arr[b].N
}

func GetTopNStrInt(m map[string]int, n int) []TopNStrIntDatum {
	data := make(TopNStrIntData, 0, len(m))
	for k, v := range m {
		data = append(data, TopNStrIntDatum{k, v})
	}
	sort.Sort(data)
	return data[:min(len(data), n)]
}
