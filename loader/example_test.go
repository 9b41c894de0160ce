// SPDX-License-Identifier: MIT

package loader_test

import (
	"fmt"

	"github.com/katalvlaran/roadpath/loader"
)

func ExampleLoadFromText() {
	_, err := loader.LoadFromText(`<roadsystem>
		<node id="1" role="start"><link ref="2" weight="3"/></node>
		<node id="2" role="finish"><link ref="1" weight="4"/></node>
	</roadsystem>`)
	if le, ok := loader.AsLoadError(err); ok {
		fmt.Println(le.Kind, "|", le.Reason)
	}
	// Output:
	// consistency | Different weight between 2 nodes is not allowed
}
