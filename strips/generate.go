// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package strips

import "fmt"

// Gripper returns the classical Gripper problem with n balls. A robot with two
// grippers must carry all the balls from room A to room B.
func Gripper(n int) *File {
	f := &File{Domain: "gripper", Name: fmt.Sprintf("gripper-%d", n)}
	rooms := []string{"a", "b"}
	hands := []string{"left", "right"}
	f.Init = []string{"at-robby-a", "free-left", "free-right"}
	for i := 1; i <= n; i++ {
		f.Init = append(f.Init, fmt.Sprintf("at-ball%d-a", i))
		f.Goal = append(f.Goal, fmt.Sprintf("at-ball%d-b", i))
	}
	for _, from := range rooms {
		for _, to := range rooms {
			if from == to {
				continue
			}
			f.Actions = append(f.Actions, ActionSpec{
				Name: fmt.Sprintf("move %s %s", from, to),
				Pre:  []string{"at-robby-" + from},
				Add:  []string{"at-robby-" + to},
				Del:  []string{"at-robby-" + from},
			})
		}
	}
	for i := 1; i <= n; i++ {
		ball := fmt.Sprintf("ball%d", i)
		for _, r := range rooms {
			for _, h := range hands {
				f.Actions = append(f.Actions, ActionSpec{
					Name: fmt.Sprintf("pick %s %s %s", ball, r, h),
					Pre:  []string{fmt.Sprintf("at-%s-%s", ball, r), "at-robby-" + r, "free-" + h},
					Add:  []string{fmt.Sprintf("carry-%s-%s", ball, h)},
					Del:  []string{fmt.Sprintf("at-%s-%s", ball, r), "free-" + h},
				}, ActionSpec{
					Name: fmt.Sprintf("drop %s %s %s", ball, r, h),
					Pre:  []string{fmt.Sprintf("carry-%s-%s", ball, h), "at-robby-" + r},
					Add:  []string{fmt.Sprintf("at-%s-%s", ball, r), "free-" + h},
					Del:  []string{fmt.Sprintf("carry-%s-%s", ball, h)},
				})
			}
		}
	}
	return f
}

// Collect returns a problem with n items that must each be collected by a
// dedicated action. Fluents item<i> mark items still to collect.
func Collect(n int) *File {
	f := &File{Domain: "collect", Name: fmt.Sprintf("collect-%d", n)}
	for i := 1; i <= n; i++ {
		item, done := fmt.Sprintf("item%d", i), fmt.Sprintf("collected%d", i)
		f.Init = append(f.Init, item)
		f.Goal = append(f.Goal, done)
		f.Actions = append(f.Actions, ActionSpec{
			Name: fmt.Sprintf("collect %d", i),
			Pre:  []string{item},
			Add:  []string{done},
			Del:  []string{item},
		})
	}
	return f
}
