package models

import "attendance-server/db"

func Init() {
	db.Instance.AutoMigrate(&Student{})
}
