package editor

import (
	"slices"
	"strings"
	"testing"
)

func TestDecodeRequest(t *testing.T) {
	t.Run("plain request", func(t *testing.T) {
		req, err := DecodeRequest([]byte(`{"command":"view","path":"/tmp/f.txt","view_range":[1,10]}`))
		if err != nil {
			t.Fatalf("DecodeRequest() error: %v", err)
		}
		if req.Command != CmdView || req.Path != "/tmp/f.txt" {
			t.Errorf("decoded command/path = %q/%q", req.Command, req.Path)
		}
		if !slices.Equal(req.ViewRange, []int{1, 10}) {
			t.Errorf("ViewRange = %v, want [1 10]", req.ViewRange)
		}
	})

	t.Run("absent and empty new_str differ", func(t *testing.T) {
		req, err := DecodeRequest([]byte(`{"command":"str_replace","path":"/f","old_str":"a"}`))
		if err != nil {
			t.Fatalf("DecodeRequest() error: %v", err)
		}
		if req.NewStr != nil {
			t.Errorf("NewStr = %q, want nil when absent", *req.NewStr)
		}
		req, err = DecodeRequest([]byte(`{"command":"str_replace","path":"/f","old_str":"a","new_str":""}`))
		if err != nil {
			t.Fatalf("DecodeRequest() error: %v", err)
		}
		if req.NewStr == nil || *req.NewStr != "" {
			t.Errorf("NewStr = %v, want a present empty string", req.NewStr)
		}
	})

	t.Run("string digits are coerced", func(t *testing.T) {
		req, err := DecodeRequest([]byte(`{"command":"insert","path":"/f","insert_line":"5","new_str":"x"}`))
		if err != nil {
			t.Fatalf("DecodeRequest() error: %v", err)
		}
		if req.InsertLine == nil || *req.InsertLine != 5 {
			t.Errorf("InsertLine = %v, want 5", req.InsertLine)
		}

		req, err = DecodeRequest([]byte(`{"command":"view","path":"/f","view_range":["1","10"]}`))
		if err != nil {
			t.Fatalf("DecodeRequest() error: %v", err)
		}
		if !slices.Equal(req.ViewRange, []int{1, 10}) {
			t.Errorf("ViewRange = %v, want [1 10]", req.ViewRange)
		}

		req, err = DecodeRequest([]byte(`{"command":"str_replace","path":"/f","old_str":"a","line_numbers":[1,"2"]}`))
		if err != nil {
			t.Fatalf("DecodeRequest() error: %v", err)
		}
		if !slices.Equal(req.LineNumbers, []int{1, 2}) {
			t.Errorf("LineNumbers = %v, want [1 2]", req.LineNumbers)
		}
	})

	t.Run("non numeric strings still fail", func(t *testing.T) {
		_, err := DecodeRequest([]byte(`{"command":"insert","path":"/f","insert_line":"abc","new_str":"x"}`))
		if err == nil {
			t.Fatal("DecodeRequest() succeeded, want an error")
		}
		if !strings.HasPrefix(err.Error(), "invalid arguments:") {
			t.Errorf("error = %q, want an invalid arguments message", err.Error())
		}
		if ErrorKind(err) != KindInvalidParam {
			t.Errorf("ErrorKind = %q, want %q", ErrorKind(err), KindInvalidParam)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := DecodeRequest([]byte(`{"command":`))
		if err == nil {
			t.Fatal("DecodeRequest() succeeded, want an error")
		}
	})

	t.Run("enable_linting", func(t *testing.T) {
		req, err := DecodeRequest([]byte(`{"command":"str_replace","path":"/f","old_str":"a","enable_linting":true}`))
		if err != nil {
			t.Fatalf("DecodeRequest() error: %v", err)
		}
		if req.EnableLint == nil || !*req.EnableLint {
			t.Errorf("EnableLint = %v, want true", req.EnableLint)
		}
	})
}

func TestJSONSchema(t *testing.T) {
	schema := JSONSchema()
	props, ok := schema["properties"].(map[string]any)
	if !ok {
		t.Fatal("schema has no properties map")
	}
	for _, name := range []string{
		"command", "path", "file_text", "view_range", "old_str", "new_str",
		"insert_line", "line_numbers", "line_range", "line_all",
		"delete_lines", "delete_range", "regex", "enable_linting",
	} {
		if _, ok := props[name]; !ok {
			t.Errorf("schema is missing property %q", name)
		}
	}
	required, ok := schema["required"].([]string)
	if !ok || !slices.Equal(required, []string{"command", "path"}) {
		t.Errorf("required = %v, want [command path]", schema["required"])
	}
	command, ok := props["command"].(map[string]any)
	if !ok {
		t.Fatal("command property is not a map")
	}
	enum, ok := command["enum"].([]string)
	if !ok || !slices.Equal(enum, Commands()) {
		t.Errorf("command enum = %v, want %v", command["enum"], Commands())
	}
}
