package model

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
)

// SaveState はモデルの状態（スナップショット等のgobエンコード可能な値）をファイルに保存する
//
// 使用例:
//
//	snap, _ := clf.Export()
//	err := model.SaveState(snap, "model.gob")
func SaveState(state interface{}, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := SaveStateToWriter(state, file); err != nil {
		return err
	}

	return nil
}

// LoadState はファイルからモデルの状態を読み込む
//
// 使用例:
//
//	var snap naive_bayes.Snapshot[int]
//	err := model.LoadState(&snap, "model.gob")
func LoadState(state interface{}, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return LoadStateFromReader(state, file)
}

// SaveStateToWriter はモデルの状態をio.Writerに保存する
func SaveStateToWriter(state interface{}, w io.Writer) error {
	encoder := gob.NewEncoder(w)
	if err := encoder.Encode(state); err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	return nil
}

// LoadStateFromReader はio.Readerからモデルの状態を読み込む
func LoadStateFromReader(state interface{}, r io.Reader) error {
	decoder := gob.NewDecoder(r)
	if err := decoder.Decode(state); err != nil {
		return fmt.Errorf("failed to decode state: %w", err)
	}
	return nil
}
