/*
 * Copyright 2023 Quill Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package hlog

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/duriantang/quill/pkg/common/test/assert"
)

func TestSetLevel(t *testing.T) {
	setLogger := &defaultLogger{
		stdlog: log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile|log.Lmicroseconds),
		depth:  4,
	}

	for _, lv := range []Level{
		LevelTrace, LevelDebug, LevelInfo, LevelNotice, LevelWarn, LevelError, LevelFatal,
	} {
		setLogger.SetLevel(lv)
		assert.DeepEqual(t, lv, setLogger.level)
	}

	setLogger.SetLevel(7)
	assert.DeepEqual(t, 7, int(setLogger.level))
	assert.DeepEqual(t, "[?7] ", setLogger.level.toString())
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := &defaultLogger{
		stdlog: log.New(&buf, "", 0),
		depth:  4,
	}
	l.SetLevel(LevelWarn)

	l.Infof("should not appear")
	assert.DeepEqual(t, 0, buf.Len())

	l.Warnf("watermark %d exceeded", 8192)
	assert.True(t, strings.Contains(buf.String(), "[Warn] watermark 8192 exceeded"))
}

func TestSystemLoggerPrefix(t *testing.T) {
	var buf bytes.Buffer
	prev := SystemLogger()
	defer SetSystemLogger(prev)

	SetSystemLogger(&defaultLogger{stdlog: log.New(&buf, "", 0), depth: 4})
	SystemLogger().Errorf("illegal Content-Length: %q", "12a")
	assert.True(t, strings.Contains(buf.String(), systemLogPrefix))
	assert.True(t, strings.Contains(buf.String(), `illegal Content-Length: "12a"`))
}
