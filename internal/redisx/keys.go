package redisx

import "time"

const (
	// Serialized order for fast GETs: order:{order_id} -> order JSON
	KeyOrder = "order:%d"
)

var TTLOrderCache = 5 * time.Minute
