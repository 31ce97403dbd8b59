package calamp

import (
	"fmt"

	"github.com/rcrowley/go-metrics"
)

const (
	decodedMessagesMetric = "decoded-messages"
	decodeErrorsMetric    = "decode-errors"
	messageSizeMetric     = "message-size"
)

func getOrRegisterHistogram(name string, r metrics.Registry) metrics.Histogram {
	return r.GetOrRegister(name, func() metrics.Histogram {
		return metrics.NewHistogram(metrics.NewExpDecaySample(1028, 0.015))
	}).(metrics.Histogram)
}

func getMetricNameForMessageType(name string, t MessageType) string {
	return fmt.Sprintf(name+"-for-type-%s", t)
}

func getOrRegisterMessageTypeMeter(name string, t MessageType, r metrics.Registry) metrics.Meter {
	return metrics.GetOrRegisterMeter(getMetricNameForMessageType(name, t), r)
}
