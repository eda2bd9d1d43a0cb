/*
 Copyright 2026 The GoPlus Authors (goplus.org)

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

package refraction

import (
	"github.com/sirupsen/logrus"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the logger refraction reports to. Pass nil to restore
// the logrus standard logger.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	logger = l
}

func memberFields(typ Type, m Member) logrus.Fields {
	fields := logrus.Fields{
		"type":   typ.Name(),
		"member": m.Name,
		"kind":   m.Kind.String(),
	}
	if m.Owner != nil {
		fields["owner"] = m.Owner.Name()
	}
	return fields
}
