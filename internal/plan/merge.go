package plan

import (
	"fmt"

	"debateformat-migrate/internal/source"
)

// mergeResources appends the "#all" resource, if declared, and then each
// explicitly included resource to the speech type's own periods and bells.
func mergeResources(st *SpeechType, resources map[string]*Resource) error {
	if all, ok := resources[source.AllResourceRef]; ok {
		st.addResource(all)
	}

	for _, ref := range st.ResourceRefs {
		res, ok := resources[ref]
		if !ok {
			return fmt.Errorf("%w %q included by %s", ErrUnknownResource, ref, speechTypeLocation(st.Ref))
		}

		st.addResource(res)
	}

	return nil
}

// addResource shares the resource's periods but copies its bells, since a
// bell's next period is resolved per speech type.
func (st *SpeechType) addResource(res *Resource) {
	st.Periods = append(st.Periods, res.Periods...)

	for _, bell := range res.Bells {
		cp := *bell
		st.Bells = append(st.Bells, &cp)
	}
}
