package service

import "errors"

var (
	// ErrInvalidLocation - координаты вне допустимых диапазонов
	ErrInvalidLocation = errors.New("invalid location")
	// ErrSnapshotNotFound возвращается репозиторием, если снимок ещё не сохранялся
	ErrSnapshotNotFound = errors.New("snapshot not found")
	// ErrPersistenceWrite - снимок не удалось записать; состояние в памяти остаётся верным
	ErrPersistenceWrite = errors.New("persistence write failed")
	// ErrPersistenceRead - снимок не удалось прочитать или разобрать
	ErrPersistenceRead = errors.New("persistence read failed")
)
