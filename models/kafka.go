package models

// DeliveryReport is the outcome of one accepted send. Err is nil when the
// broker acknowledged the record.
type DeliveryReport struct {
	Topic     string
	Partition int32
	Offset    int64
	Key       []byte
	Err       error
}

func (d DeliveryReport) Delivered() bool {
	return d.Err == nil
}
