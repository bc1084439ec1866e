package workouts

import (
	"bytes"
	"encoding/json"
	"errors"
)

func encodeExercises(exercises []LoggedExercise) ([]byte, error) {
	if exercises == nil {
		exercises = []LoggedExercise{}
	}
	return json.Marshal(exercises)
}

func decodeExercises(recordID int64, payload []byte) ([]LoggedExercise, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil, &MalformedRecordError{RecordID: recordID, Err: errors.New("empty exercises payload")}
	}

	var exercises []LoggedExercise
	if err := json.Unmarshal(payload, &exercises); err != nil {
		return nil, &MalformedRecordError{RecordID: recordID, Err: err}
	}
	for _, e := range exercises {
		for _, s := range e.Sets {
			if s.Reps < 0 || s.Weight < 0 {
				return nil, &MalformedRecordError{RecordID: recordID, Err: errors.New("negative reps or weight")}
			}
		}
	}
	return exercises, nil
}
