package helper

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"kost_market/database"
	"kost_market/model"

	"github.com/go-co-op/gocron/v2"
)

const priceBoundsKey = "listings:price-bounds"

var priceBoundsScheduler gocron.Scheduler

// RecomputePriceBounds scans published room types for the observed monthly
// price range and caches it in redis. The browse handler falls back to this
// range when the renter picked no price window.
func RecomputePriceBounds() {
	log.Println("[CRON] RecomputePriceBounds triggered")

	db := database.DB
	var bounds model.PriceBounds
	err := db.Model(&model.RoomType{}).
		Select("COALESCE(MIN(room_types.monthly_price), 0) AS min, COALESCE(MAX(room_types.monthly_price), 0) AS max").
		Joins("JOIN properties ON properties.id = room_types.property_id").
		Where("properties.is_published = ?", true).
		Scan(&bounds).Error
	if err != nil {
		log.Printf("failed to scan price bounds: %v", err)
		return
	}

	payload, err := json.Marshal(bounds)
	if err != nil {
		log.Printf("failed to marshal price bounds: %v", err)
		return
	}

	if err := database.Redis.Set(context.Background(), priceBoundsKey, payload, 48*time.Hour).Err(); err != nil {
		log.Printf("failed to cache price bounds: %v", err)
		return
	}

	log.Printf("price bounds cached: [%d, %d]", bounds.Min, bounds.Max)
}

// GetPriceBounds reads the cached bounds, recomputing on a cache miss.
func GetPriceBounds(ctx context.Context) model.PriceBounds {
	var bounds model.PriceBounds

	raw, err := database.Redis.Get(ctx, priceBoundsKey).Bytes()
	if err == nil {
		if err := json.Unmarshal(raw, &bounds); err == nil {
			return bounds
		}
	}

	RecomputePriceBounds()

	raw, err = database.Redis.Get(ctx, priceBoundsKey).Bytes()
	if err != nil {
		return model.PriceBounds{}
	}
	if err := json.Unmarshal(raw, &bounds); err != nil {
		return model.PriceBounds{}
	}
	return bounds
}

func StartPriceBoundsScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("WIB", 7*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	priceBoundsScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 15, 0),
			),
		),
		gocron.NewTask(RecomputePriceBounds),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Price bounds scheduler started (00:15 WIB)")
}

func StopPriceBoundsScheduler() {
	if priceBoundsScheduler != nil {
		_ = priceBoundsScheduler.Shutdown()
	}
}
