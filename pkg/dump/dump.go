/*
Copyright (c) 2026 the shaperctl authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package dump contains functions used to dump JSON documents to the output of the tool.
package dump

import (
	"encoding/json"
	"io"
	"os"
	"runtime"

	isatty "github.com/mattn/go-isatty"
	"github.com/nwidger/jsoncolor"
)

// Pretty dumps the given data to the given stream so that it looks pretty. If the data is a valid
// JSON document then it will be indented before printing it. If the stream is a terminal then the
// output will also use colors.
func Pretty(stream io.Writer, body []byte) error {
	if len(body) == 0 {
		return nil
	}
	var data interface{}
	err := json.Unmarshal(body, &data)
	if err != nil {
		return dumpBytes(stream, body)
	}
	if isTerminal(stream) && runtime.GOOS != "windows" {
		encoder := jsoncolor.NewEncoder(stream)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	}
	encoder := json.NewEncoder(stream)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Single functions exactly the same as Pretty except it generates a single line without
// indentation or any other white space.
func Single(stream io.Writer, body []byte) error {
	if len(body) == 0 {
		return nil
	}
	var data interface{}
	err := json.Unmarshal(body, &data)
	if err != nil {
		return dumpBytes(stream, body)
	}
	if isTerminal(stream) && runtime.GOOS != "windows" {
		encoder := jsoncolor.NewEncoder(stream)
		err = encoder.Encode(data)
		if err != nil {
			return err
		}
		_, err = stream.Write([]byte("\n"))
		return err
	}
	encoder := json.NewEncoder(stream)
	return encoder.Encode(data)
}

func dumpBytes(stream io.Writer, data []byte) error {
	_, err := stream.Write(data)
	if err != nil {
		return err
	}
	_, err = stream.Write([]byte("\n"))
	return err
}

func isTerminal(stream io.Writer) bool {
	file, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
