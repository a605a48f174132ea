package models

// Show 表示一部追蹤中的影集
type Show struct {
	ID           uint   `gorm:"primaryKey" json:"id"`          // 由儲存層指派，指派後不再改變
	Name         string `gorm:"not null" json:"name"`          // 影集名稱
	EpisodesSeen int    `gorm:"not null" json:"episodes_seen"` // 已觀看集數
}

// SeedShows 回傳預設載入的影集資料
func SeedShows() []Show {
	return []Show{
		{ID: 1, Name: "Game of Thrones", EpisodesSeen: 0},
		{ID: 2, Name: "Naruto", EpisodesSeen: 220},
		{ID: 3, Name: "Black Mirror", EpisodesSeen: 3},
		{ID: 4, Name: "Brooklyn Nine-Nine", EpisodesSeen: 0},
		{ID: 5, Name: "Breaking Bad", EpisodesSeen: 42},
		{ID: 6, Name: "Rick and Morty", EpisodesSeen: 12},
	}
}
