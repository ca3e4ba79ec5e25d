package blockdevice

import (
	"sync"

	"github.com/Thog/kfs-libfs/pkg/block"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	blockDevicePrometheusMetrics sync.Once

	blockDeviceOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "libfs",
			Subsystem: "blockdevice",
			Name:      "block_device_operations_total",
			Help:      "Total number of operations against block devices.",
		},
		[]string{"name", "operation"})
	blockDeviceBlocksTransferredTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "libfs",
			Subsystem: "blockdevice",
			Name:      "block_device_blocks_transferred_total",
			Help:      "Total number of blocks transferred to and from block devices.",
		},
		[]string{"name", "operation"})
)

type metricsBlockDevice struct {
	base block.BlockDevice

	reads         prometheus.Counter
	writes        prometheus.Counter
	blocksRead    prometheus.Counter
	blocksWritten prometheus.Counter
}

// NewMetricsBlockDevice is a decorator for BlockDevice that exposes the
// number of operations performed and blocks transferred through
// Prometheus. Placed between a cache and its backing device, it makes
// the cache's effectiveness observable.
func NewMetricsBlockDevice(base block.BlockDevice, name string) block.BlockDevice {
	blockDevicePrometheusMetrics.Do(func() {
		prometheus.MustRegister(blockDeviceOperationsTotal)
		prometheus.MustRegister(blockDeviceBlocksTransferredTotal)
	})

	return &metricsBlockDevice{
		base: base,

		reads:         blockDeviceOperationsTotal.WithLabelValues(name, "RawRead"),
		writes:        blockDeviceOperationsTotal.WithLabelValues(name, "RawWrite"),
		blocksRead:    blockDeviceBlocksTransferredTotal.WithLabelValues(name, "RawRead"),
		blocksWritten: blockDeviceBlocksTransferredTotal.WithLabelValues(name, "RawWrite"),
	}
}

func (d *metricsBlockDevice) RawRead(blocks []block.Block, index block.BlockIndex) error {
	d.reads.Inc()
	d.blocksRead.Add(float64(len(blocks)))
	return d.base.RawRead(blocks, index)
}

func (d *metricsBlockDevice) RawWrite(blocks []block.Block, index block.BlockIndex) error {
	d.writes.Inc()
	d.blocksWritten.Add(float64(len(blocks)))
	return d.base.RawWrite(blocks, index)
}

func (d *metricsBlockDevice) Count() (block.BlockCount, error) {
	return d.base.Count()
}
