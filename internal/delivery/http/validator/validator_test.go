package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type phoneInput struct {
	Phone string `validate:"inphone"`
}

type panInput struct {
	PAN string `validate:"pan"`
}

type aadhaarInput struct {
	Aadhaar string `validate:"aadhaar"`
}

type gstinInput struct {
	GST string `validate:"gstin"`
}

func TestValidator_Phone(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(phoneInput{Phone: "9876543210"}))

	for _, phone := range []string{"", "12345", "98765432101", "98765abc10", "+919876543210"} {
		assert.Error(t, v.Validate(phoneInput{Phone: phone}), "phone: %q", phone)
	}
}

func TestValidator_PAN(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(panInput{PAN: "ABCDE1234F"}))

	for _, pan := range []string{"", "abcde1234f", "ABCDE12345", "ABCD1234F", "ABCDE1234FG"} {
		assert.Error(t, v.Validate(panInput{PAN: pan}), "pan: %q", pan)
	}
}

func TestValidator_Aadhaar(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(aadhaarInput{Aadhaar: "123412341234"}))

	for _, aadhaar := range []string{"", "12341234123", "1234123412345", "12341234123a"} {
		assert.Error(t, v.Validate(aadhaarInput{Aadhaar: aadhaar}), "aadhaar: %q", aadhaar)
	}
}

func TestValidator_GSTIN(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(gstinInput{GST: "27ABCDE1234F1Z5"}))

	for _, gst := range []string{"", "27abcde1234f1z5", "27ABCDE1234F105", "27ABCDE1234F1X5", "7ABCDE1234F1Z5"} {
		assert.Error(t, v.Validate(gstinInput{GST: gst}), "gst: %q", gst)
	}
}
