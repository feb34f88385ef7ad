package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	authRepo "pustakaku_backend/internals/features/users/auth/repository"
)

// CleanupInterval membaca TOKEN_BLACKLIST_CLEANUP_HOURS (default: 24 jam).
func CleanupInterval() time.Duration {
	hours := 24
	if val := os.Getenv("TOKEN_BLACKLIST_CLEANUP_HOURS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			hours = parsed
		}
	}
	return time.Duration(hours) * time.Hour
}

// StartBlacklistCleanupScheduler menghapus token blacklist yang sudah lewat
// expired_at secara periodik supaya tabelnya tidak tumbuh tanpa batas.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	interval := CleanupInterval()
	go func() {
		for {
			log.Println("[CLEANUP] Menjalankan pembersihan token_blacklist...")

			if deleted, err := authRepo.CleanupExpiredBlacklist(db); err != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus token kadaluarsa: %v", err)
			} else if deleted > 0 {
				log.Printf("[CLEANUP] %d token kadaluarsa dihapus", deleted)
			} else {
				log.Println("[CLEANUP] Tidak ada token yang memenuhi syarat dihapus")
			}

			time.Sleep(interval)
		}
	}()
}
