package queue

import "errors"

var ErrQueueFull = errors.New("activity queue is full")
