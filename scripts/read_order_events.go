//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/airport-service/internal/domain"
)

// Печатает события stream:order:created. По умолчанию только новые, -from 0 читает стрим с начала.
func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	from := flag.String("from", "$", "Stream ID to start after")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	fmt.Printf("Listening on %s (Ctrl+C to stop)\n", domain.StreamOrderCreated)

	lastID := *from
	for {
		results, err := client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{domain.StreamOrderCreated, lastID},
			Count:   10,
			Block:   5 * time.Second,
		}).Result()
		if ctx.Err() != nil {
			return
		}
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			log.Fatalf("Failed to read stream: %v", err)
		}

		for _, stream := range results {
			for _, msg := range stream.Messages {
				lastID = msg.ID

				dataStr, ok := msg.Values["data"].(string)
				if !ok {
					fmt.Printf("%s: message without data field\n", msg.ID)
					continue
				}

				var event domain.OrderCreatedEvent
				if err := json.Unmarshal([]byte(dataStr), &event); err != nil {
					fmt.Printf("%s: bad payload: %v\n", msg.ID, err)
					continue
				}

				fmt.Printf("%s order=%d user=%s tickets=%d\n", msg.ID, event.OrderID, event.UserID, len(event.Tickets))
				for _, t := range event.Tickets {
					fmt.Printf("    flight=%d row=%d seat=%d\n", t.FlightID, t.Row, t.Seat)
				}
			}
		}
	}
}
