package orders

import "strconv"

const (
	TopicProductEvents = "product-events"
	TopicOrderEvents   = "order-events"
)

// Partition key = order id, so a consumer partitioning on key sees every
// event for one order in publish order.
func PartitionKey(orderID int64) []byte {
	return []byte(strconv.FormatInt(orderID, 10))
}
