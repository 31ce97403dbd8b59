package calamp

import (
	"context"

	"github.com/rcrowley/go-metrics"
	"golang.org/x/sync/errgroup"
)

// Decoder decodes whole messages according to a Config and records metrics
// about them. A Decoder holds no per-message state and may be shared by any
// number of goroutines.
type Decoder struct {
	conf *Config

	decodedMeter metrics.Meter
	errorMeter   metrics.Meter
	sizeHisto    metrics.Histogram
}

// NewDecoder creates a new Decoder using the given config.
func NewDecoder(conf *Config) (*Decoder, error) {
	if conf == nil {
		conf = NewConfig()
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	// later changes to the caller's Config must not bypass Validate
	snapshot := *conf
	conf = &snapshot

	return &Decoder{
		conf:         conf,
		decodedMeter: metrics.GetOrRegisterMeter(decodedMessagesMetric, conf.MetricRegistry),
		errorMeter:   metrics.GetOrRegisterMeter(decodeErrorsMetric, conf.MetricRegistry),
		sizeHisto:    getOrRegisterHistogram(messageSizeMetric, conf.MetricRegistry),
	}, nil
}

// Config returns the copy of the configuration the Decoder was created with.
func (d *Decoder) Config() *Config {
	return d.conf
}

// ParseOptionsHeader is ParseOptionsHeader honouring the Decoder's Options
// configuration.
func (d *Decoder) ParseOptionsHeader(buf []byte) (*OptionsHeader, int, error) {
	return parseOptionsHeader(buf, d.conf)
}

// Decode decodes one message from the start of buf and returns it with the
// number of bytes consumed.
func (d *Decoder) Decode(buf []byte) (*Message, int, error) {
	d.sizeHisto.Update(int64(len(buf)))

	m, n, err := decodeMessage(buf, d.conf)
	if err != nil {
		d.errorMeter.Mark(1)
		return nil, 0, err
	}

	d.decodedMeter.Mark(1)
	getOrRegisterMessageTypeMeter(decodedMessagesMetric, m.Header.MessageType, d.conf.MetricRegistry).Mark(1)
	return m, n, nil
}

// DecodeAll decodes every buffer on its own. The result has one slot per
// buffer; slots of buffers that failed are nil and their failures are
// returned together as a *multierror.Error of *MessageError.
func (d *Decoder) DecodeAll(bufs [][]byte) ([]*Message, error) {
	msgs := make([]*Message, len(bufs))
	errs := make([]error, len(bufs))

	for i, buf := range bufs {
		msgs[i], errs[i] = d.decodeAt(i, buf)
	}

	return msgs, newBatchError(errs)
}

// DecodeConcurrent is DecodeAll spread over Config.Concurrency goroutines.
// Only cancellation of ctx stops the batch early, in which case ctx's error
// is returned and the messages decoded so far are discarded.
func (d *Decoder) DecodeConcurrent(ctx context.Context, bufs [][]byte) ([]*Message, error) {
	msgs := make([]*Message, len(bufs))
	errs := make([]error, len(bufs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.conf.Concurrency)

	for i := range bufs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// each goroutine owns its slot
			msgs[i], errs[i] = d.decodeAt(i, bufs[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return msgs, newBatchError(errs)
}

func (d *Decoder) decodeAt(i int, buf []byte) (*Message, error) {
	m, _, err := d.Decode(buf)
	if err != nil {
		Logger.Printf("calamp: dropping message %d (%d bytes): %v\n", i, len(buf), err)
		return nil, &MessageError{Index: i, Err: err}
	}
	return m, nil
}
