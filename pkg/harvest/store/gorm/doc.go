// Package gorm implements the harvester store on top of gorm.
package gorm
