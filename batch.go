package rigid

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

const DEFAULT_WORKERS = 1

func task[T any](workersCount int, data []T, fn func(data *T)) {
	var wg sync.WaitGroup
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(&data[i])
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, dataSize))
	}
	wg.Wait()
}

// TransformPoints maps a slice of points into the parent space in place,
// splitting the work across the given number of workers. Useful for anchor
// meshes and bounds polygons, where one pose applies to many points.
func (t Transform) TransformPoints(workers int, points []mgl64.Vec3) {
	workers = max(DEFAULT_WORKERS, workers)

	task(workers, points, func(point *mgl64.Vec3) {
		*point = t.TransformPoint(*point)
	})
}
