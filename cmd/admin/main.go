package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"resumeforge/internal/config"
	"resumeforge/internal/database"
	"resumeforge/internal/storage"
	"resumeforge/internal/store"
)

func main() {
	var (
		resetDocument = flag.Bool("reset-document", false, "把简历文档恢复为默认内容（清除 Redis 快照）")
		purgeDays     = flag.Int("purge-exports-days", 0, "删除 N 天前的导出记录及其 PDF 对象（0 表示跳过）")
	)
	flag.Parse()

	if !*resetDocument && *purgeDays <= 0 {
		log.Fatal("nothing to do: pass --reset-document and/or --purge-exports-days")
	}

	cfg := config.MustLoad()
	ctx := context.Background()

	if *resetDocument {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr()})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("ping redis: %v", err)
		}
		if err := redisClient.Del(ctx, store.KeyResumeData).Err(); err != nil {
			log.Fatalf("delete resume snapshot: %v", err)
		}
		fmt.Printf("已清除简历快照，下次启动将回落到默认文档。\n")
	}

	if *purgeDays > 0 {
		db, err := database.InitDatabase(cfg.Database)
		if err != nil {
			log.Fatalf("init database: %v", err)
		}

		storageClient, err := storage.NewClient(cfg.MinIO)
		if err != nil {
			log.Fatalf("init storage client: %v", err)
		}

		cutoff := time.Now().AddDate(0, 0, -*purgeDays)

		var exports []database.Export
		if err := db.Where("created_at < ?", cutoff).Find(&exports).Error; err != nil {
			log.Fatalf("query stale exports: %v", err)
		}

		removed := 0
		for _, export := range exports {
			prefix := fmt.Sprintf("exports/%d/", export.ID)
			if err := storageClient.DeletePrefix(ctx, prefix); err != nil {
				log.Printf("delete pdf objects for export %d: %v", export.ID, err)
				continue
			}
			if err := db.Unscoped().Delete(&export).Error; err != nil {
				log.Printf("delete export record %d: %v", export.ID, err)
				continue
			}
			removed++
		}

		fmt.Printf("已清理 %d 条导出记录（早于 %s）。\n", removed, cutoff.Format("2006-01-02"))
	}
}
