package contracts

import "testing"

func TestValidateAvailabilityQuery(t *testing.T) {
	valid := []string{
		`{"start_date": "2025-11-01", "n_days": 3, "n_people": 2}`,
		// движок сам превращает неположительные значения в пустой результат,
		// схема проверяет только типы
		`{"start_date": "2025-11-01", "n_days": 0, "n_people": -1}`,
	}
	for _, payload := range valid {
		if err := Validate("availability_query", []byte(payload)); err != nil {
			t.Errorf("payload %s should be valid, got: %v", payload, err)
		}
	}

	invalid := []string{
		`{}`,
		`{"start_date": "2025-11-01"}`,
		`{"start_date": "01.11.2025", "n_days": 3, "n_people": 2}`,
		`{"start_date": "2025-11-01", "n_days": 3.5, "n_people": 2}`,
		`{"start_date": "2025-11-01", "n_days": 3, "n_people": 2, "extra": true}`,
		`[1, 2, 3]`,
	}
	for _, payload := range invalid {
		if err := Validate("availability_query", []byte(payload)); err == nil {
			t.Errorf("payload %s should have been rejected", payload)
		}
	}
}

func TestValidateUnknownSchema(t *testing.T) {
	if err := Validate("no_such_schema", []byte(`{}`)); err == nil {
		t.Error("expected error for unknown schema key")
	}
}

func TestValidateMalformedJSON(t *testing.T) {
	if err := Validate("availability_query", []byte(`{broken`)); err == nil {
		t.Error("expected error for malformed JSON payload")
	}
}
